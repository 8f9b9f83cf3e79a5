package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/model"
)

// Reserved system roles (Admin, Docente, Estudiante) that must never be
// deleted, regardless of usage.
const (
	minReservedRoleID = 1
	maxReservedRoleID = 3
)

// RoleService manages roles and guards their deletion: reserved roles
// and roles still held by users are rejected before any request is made.
type RoleService struct {
	resource[model.Role, model.RoleForm, model.RoleUpdate]
}

func NewRoleService(client *api.Client, log zerolog.Logger) *RoleService {
	s := &RoleService{}
	s.client = client
	s.log = log.With().Str("component", "role_service").Logger()
	s.listPath = api.Roles
	s.detailPath = api.RoleDetail
	return s
}

// IsReserved reports whether id is one of the fixed system roles.
func IsReserved(id int) bool {
	return id >= minReservedRoleID && id <= maxReservedRoleID
}

// IsInUse reports whether any user currently holds the role. The check
// is advisory: it is not atomic with a subsequent delete, and the
// backend keeps the final word on referential integrity.
func (s *RoleService) IsInUse(ctx context.Context, roleID int) (bool, error) {
	var users []model.User
	if err := s.client.Get(ctx, api.UsersByRole(roleID), &users); err != nil {
		return false, err
	}
	return len(users) > 0, nil
}

// UsageStats counts users per role, one query per role. O(roles × users)
// in network calls, acceptable only because the role set is small and
// static.
func (s *RoleService) UsageStats(ctx context.Context) (map[int]model.RoleUsage, error) {
	roles, err := s.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := make(map[int]model.RoleUsage, len(roles))
	for _, role := range roles {
		var users []model.User
		if err := s.client.Get(ctx, api.UsersByRole(role.ID), &users); err != nil {
			return nil, err
		}
		stats[role.ID] = model.RoleUsage{Name: role.Name, Count: len(users)}
	}
	return stats, nil
}

// Delete removes a role after the business rule guards. The reserved-id
// rule takes precedence over the usage-count rule.
func (s *RoleService) Delete(ctx context.Context, id int) error {
	if IsReserved(id) {
		return api.NewError(api.ErrRoleReserved)
	}
	inUse, err := s.IsInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return api.NewError(api.ErrRoleInUse)
	}
	return s.resource.Delete(ctx, id)
}
