package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
	"github.com/edusga/sga-admin/internal/validator"
)

// EnrollmentService manages enrollments and enforces the one-enrollment
// per (student, course) rule before creating.
type EnrollmentService struct {
	resource[model.Enrollment, model.EnrollmentForm, model.EnrollmentUpdate]
}

func NewEnrollmentService(client *api.Client, log zerolog.Logger) *EnrollmentService {
	s := &EnrollmentService{}
	s.client = client
	s.log = log.With().Str("component", "enrollment_service").Logger()
	s.listPath = api.Enrollments
	s.detailPath = api.EnrollmentDetail
	return s
}

// ListByStudent returns one student's enrollments.
func (s *EnrollmentService) ListByStudent(ctx context.Context, userID int) ([]model.Enrollment, error) {
	return s.List(ctx, map[string]string{"estudiante": strconv.Itoa(userID)})
}

// ListByCourse returns one course's enrollments.
func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID int) ([]model.Enrollment, error) {
	return s.List(ctx, map[string]string{"curso": strconv.Itoa(courseID)})
}

// ListWithDetails returns enrollments with student, course and subject
// expanded by the backend serializer.
func (s *EnrollmentService) ListWithDetails(ctx context.Context) ([]model.Enrollment, error) {
	var items []model.Enrollment
	url := api.Enrollments() + "?expand=estudiante,curso,asignatura"
	if err := s.client.Get(ctx, url, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CheckDuplicate reports whether the student is already enrolled in the
// course. Advisory only: not atomic with a subsequent create, so a true
// race is left for the backend to reject.
func (s *EnrollmentService) CheckDuplicate(ctx context.Context, studentID, courseID int) (bool, error) {
	enrollments, err := s.ListByStudent(ctx, studentID)
	if err != nil {
		return false, err
	}
	for _, e := range enrollments {
		if e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

// Create enrolls a student after the duplicate guard. When the guard
// trips, no persistence call is issued beyond the check itself.
func (s *EnrollmentService) Create(ctx context.Context, form model.EnrollmentForm) (model.Enrollment, error) {
	var zero model.Enrollment
	if err := validator.Check(form); err != nil {
		return zero, err
	}
	dup, err := s.CheckDuplicate(ctx, form.StudentID, form.CourseID)
	if err != nil {
		return zero, err
	}
	if dup {
		return zero, api.NewError(api.ErrDuplicateEnrollment)
	}
	return s.resource.Create(ctx, form)
}
