package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
)

// UserService manages users.
type UserService struct {
	resource[model.User, model.UserForm, model.UserUpdate]
}

func NewUserService(client *api.Client, log zerolog.Logger) *UserService {
	s := &UserService{}
	s.client = client
	s.log = log.With().Str("component", "user_service").Logger()
	s.listPath = api.Users
	s.detailPath = api.UserDetail
	return s
}

// ListByRole returns the users holding one role.
func (s *UserService) ListByRole(ctx context.Context, roleID int) ([]model.User, error) {
	return s.List(ctx, map[string]string{"rol": strconv.Itoa(roleID)})
}

// Update patches a user. An empty password is dropped from the payload
// so the stored credential is never overwritten with a blank.
func (s *UserService) Update(ctx context.Context, id int, form model.UserUpdate) (model.User, error) {
	if form.Password != nil && *form.Password == "" {
		form.Password = nil
	}
	return s.resource.Update(ctx, id, form)
}
