package store

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/model"
)

// Per-entity store types. Each one owns exactly one collection; nothing
// else mutates it.
type (
	RoleStore       = Store[model.Role, model.RoleForm, model.RoleUpdate]
	UserStore       = Store[model.User, model.UserForm, model.UserUpdate]
	SubjectStore    = Store[model.Subject, model.SubjectForm, model.SubjectUpdate]
	CourseStore     = Store[model.Course, model.CourseForm, model.CourseUpdate]
	EnrollmentStore = Store[model.Enrollment, model.EnrollmentForm, model.EnrollmentUpdate]
)

func NewRoleStore(ctx context.Context, svc Service[model.Role, model.RoleForm, model.RoleUpdate], filter Filter, log zerolog.Logger) *RoleStore {
	return New(ctx, svc, filter, log)
}

func NewUserStore(ctx context.Context, svc Service[model.User, model.UserForm, model.UserUpdate], filter Filter, log zerolog.Logger) *UserStore {
	return New(ctx, svc, filter, log)
}

func NewSubjectStore(ctx context.Context, svc Service[model.Subject, model.SubjectForm, model.SubjectUpdate], filter Filter, log zerolog.Logger) *SubjectStore {
	return New(ctx, svc, filter, log)
}

func NewCourseStore(ctx context.Context, svc Service[model.Course, model.CourseForm, model.CourseUpdate], filter Filter, log zerolog.Logger) *CourseStore {
	return New(ctx, svc, filter, log)
}

func NewEnrollmentStore(ctx context.Context, svc Service[model.Enrollment, model.EnrollmentForm, model.EnrollmentUpdate], filter Filter, log zerolog.Logger) *EnrollmentStore {
	return New(ctx, svc, filter, log)
}
