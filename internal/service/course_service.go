package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
)

// CourseService manages courses.
type CourseService struct {
	resource[model.Course, model.CourseForm, model.CourseUpdate]
}

func NewCourseService(client *api.Client, log zerolog.Logger) *CourseService {
	s := &CourseService{}
	s.client = client
	s.log = log.With().Str("component", "course_service").Logger()
	s.listPath = api.Courses
	s.detailPath = api.CourseDetail
	return s
}

// ListBySubject returns the courses belonging to one subject.
func (s *CourseService) ListBySubject(ctx context.Context, subjectID int) ([]model.Course, error) {
	return s.List(ctx, map[string]string{"asignatura": strconv.Itoa(subjectID)})
}
