package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/api"
	"github.com/edusga/sga-admin/internal/validator"
)

// resource implements the CRUD surface shared by every entity service:
// list with optional query filters, get, create, patch and delete, all
// against the endpoint registry, all failures normalized to *api.Error.
// Entity services embed it and layer their own rules on top.
type resource[E any, C any, U any] struct {
	client     *api.Client
	log        zerolog.Logger
	listPath   func() string
	detailPath func(id int) string
}

func (r *resource[E, C, U]) List(ctx context.Context, filter map[string]string) ([]E, error) {
	var items []E
	if err := r.client.Get(ctx, api.BuildURL(r.listPath(), filter), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *resource[E, C, U]) Get(ctx context.Context, id int) (E, error) {
	var item E
	if err := r.client.Get(ctx, r.detailPath(id), &item); err != nil {
		return item, err
	}
	return item, nil
}

func (r *resource[E, C, U]) Create(ctx context.Context, form C) (E, error) {
	var item E
	if err := validator.Check(form); err != nil {
		return item, err
	}
	if err := r.client.Post(ctx, r.listPath(), form, &item); err != nil {
		return item, err
	}
	return item, nil
}

func (r *resource[E, C, U]) Update(ctx context.Context, id int, form U) (E, error) {
	var item E
	if err := validator.Check(form); err != nil {
		return item, err
	}
	if err := r.client.Patch(ctx, r.detailPath(id), form, &item); err != nil {
		return item, err
	}
	return item, nil
}

func (r *resource[E, C, U]) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, r.detailPath(id)); err != nil {
		return err
	}
	r.log.Debug().Int("id", id).Msg("deleted")
	return nil
}
