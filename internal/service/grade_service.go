package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
)

// GradeService manages grades.
type GradeService struct {
	resource[model.Grade, model.GradeForm, model.GradeUpdate]
}

func NewGradeService(client *api.Client, log zerolog.Logger) *GradeService {
	s := &GradeService{}
	s.client = client
	s.log = log.With().Str("component", "grade_service").Logger()
	s.listPath = api.Grades
	s.detailPath = api.GradeDetail
	return s
}

// ListByEnrollment returns the grades recorded for one enrollment.
func (s *GradeService) ListByEnrollment(ctx context.Context, enrollmentID int) ([]model.Grade, error) {
	return s.List(ctx, map[string]string{"inscripcion": strconv.Itoa(enrollmentID)})
}

// ListByScore returns the grades with one exact score.
func (s *GradeService) ListByScore(ctx context.Context, score int) ([]model.Grade, error) {
	return s.List(ctx, map[string]string{"calificacion": strconv.Itoa(score)})
}
