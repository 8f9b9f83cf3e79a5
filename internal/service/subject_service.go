package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
)

// SubjectService manages subjects.
type SubjectService struct {
	resource[model.Subject, model.SubjectForm, model.SubjectUpdate]
}

func NewSubjectService(client *api.Client, log zerolog.Logger) *SubjectService {
	s := &SubjectService{}
	s.client = client
	s.log = log.With().Str("component", "subject_service").Logger()
	s.listPath = api.Subjects
	s.detailPath = api.SubjectDetail
	return s
}

// ListByInstructor returns the subjects taught by one instructor.
func (s *SubjectService) ListByInstructor(ctx context.Context, userID int) ([]model.Subject, error) {
	return s.List(ctx, map[string]string{"docente": strconv.Itoa(userID)})
}
