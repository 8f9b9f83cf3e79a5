package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edusga/sga-admin/internal/model"
)

// GradeStats is the aggregate derived from the in-memory grade
// collection. It is never requested from the backend.
type GradeStats struct {
	Average   float64
	PassCount int
	FailCount int
	Total     int
}

// GradeStore specializes the generic store for grades: after every
// successful operation it recomputes the aggregate locally.
type GradeStore struct {
	*Store[model.Grade, model.GradeForm, model.GradeUpdate]

	mu    sync.Mutex
	stats GradeStats
}

func NewGradeStore(ctx context.Context, svc Service[model.Grade, model.GradeForm, model.GradeUpdate], filter Filter, log zerolog.Logger) *GradeStore {
	g := &GradeStore{Store: New(ctx, svc, filter, log)}
	g.recompute()
	return g
}

func (g *GradeStore) Fetch(ctx context.Context) error {
	err := g.Store.Fetch(ctx)
	if err == nil {
		g.recompute()
	}
	return err
}

func (g *GradeStore) SetFilter(ctx context.Context, filter Filter) error {
	err := g.Store.SetFilter(ctx, filter)
	if err == nil {
		g.recompute()
	}
	return err
}

func (g *GradeStore) Create(ctx context.Context, form model.GradeForm) (model.Grade, error) {
	grade, err := g.Store.Create(ctx, form)
	if err == nil {
		g.recompute()
	}
	return grade, err
}

func (g *GradeStore) Update(ctx context.Context, id int, form model.GradeUpdate) (model.Grade, error) {
	grade, err := g.Store.Update(ctx, id, form)
	if err == nil {
		g.recompute()
	}
	return grade, err
}

func (g *GradeStore) Delete(ctx context.Context, id int) error {
	err := g.Store.Delete(ctx, id)
	if err == nil {
		g.recompute()
	}
	return err
}

// Stats returns the aggregate for the current collection.
func (g *GradeStore) Stats() GradeStats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stats
}

func (g *GradeStore) recompute() {
	items := g.Items()

	var stats GradeStats
	stats.Total = len(items)
	var sum float64
	for _, grade := range items {
		sum += grade.Score
		if grade.Passed() {
			stats.PassCount++
		} else {
			stats.FailCount++
		}
	}
	if stats.Total > 0 {
		stats.Average = sum / float64(stats.Total)
	}

	g.mu.Lock()
	g.stats = stats
	g.mu.Unlock()
}
