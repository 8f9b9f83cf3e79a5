package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusga/sga-admin/internal/model"
)

type fakeGrades struct {
	mu        sync.Mutex
	items     []model.Grade
	nextID    int
	createErr error
}

func (f *fakeGrades) List(ctx context.Context, filter Filter) ([]model.Grade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items), nil
}

func (f *fakeGrades) Create(ctx context.Context, form model.GradeForm) (model.Grade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.Grade{}, f.createErr
	}
	f.nextID++
	created := model.Grade{ID: f.nextID, Score: form.Score, EnrollmentID: form.EnrollmentID}
	f.items = append(f.items, created)
	return created, nil
}

func (f *fakeGrades) Update(ctx context.Context, id int, form model.GradeUpdate) (model.Grade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.ID == id {
			if form.Score != nil {
				item.Score = *form.Score
			}
			if form.EnrollmentID != nil {
				item.EnrollmentID = *form.EnrollmentID
			}
			f.items[i] = item
			return item, nil
		}
	}
	return model.Grade{}, errors.New("not found")
}

func (f *fakeGrades) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func newGradeStore(fake *fakeGrades) *GradeStore {
	return NewGradeStore(context.Background(), fake, nil, zerolog.Nop())
}

func TestGradeStatsAfterFetch(t *testing.T) {
	fake := &fakeGrades{
		items: []model.Grade{
			{ID: 1, Score: 55, EnrollmentID: 1},
			{ID: 2, Score: 60, EnrollmentID: 1},
			{ID: 3, Score: 90, EnrollmentID: 2},
		},
		nextID: 3,
	}
	st := newGradeStore(fake)

	stats := st.Stats()
	assert.InDelta(t, 68.33, stats.Average, 0.01)
	assert.Equal(t, 2, stats.PassCount)
	assert.Equal(t, 1, stats.FailCount)
	assert.Equal(t, 3, stats.Total)
}

func TestGradeStatsEmptyCollection(t *testing.T) {
	st := newGradeStore(&fakeGrades{})

	stats := st.Stats()
	assert.Zero(t, stats.Average)
	assert.Zero(t, stats.Total)
}

func TestGradeStatsRecomputedAfterMutations(t *testing.T) {
	fake := &fakeGrades{
		items: []model.Grade{
			{ID: 1, Score: 55, EnrollmentID: 1},
			{ID: 2, Score: 60, EnrollmentID: 1},
			{ID: 3, Score: 90, EnrollmentID: 2},
		},
		nextID: 3,
	}
	st := newGradeStore(fake)

	// Drop the failing grade: everyone passes.
	require.NoError(t, st.Delete(context.Background(), 1))
	stats := st.Stats()
	assert.InDelta(t, 75.0, stats.Average, 0.001)
	assert.Equal(t, 2, stats.PassCount)
	assert.Equal(t, 0, stats.FailCount)
	assert.Equal(t, 2, stats.Total)

	// A new score is folded in locally, no backend aggregate involved.
	_, err := st.Create(context.Background(), model.GradeForm{Score: 59.9, EnrollmentID: 2})
	require.NoError(t, err)
	stats = st.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.FailCount)

	// Exactly the passing threshold counts as a pass.
	score := 60.0
	_, err = st.Update(context.Background(), st.Items()[2].ID, model.GradeUpdate{Score: &score})
	require.NoError(t, err)
	stats = st.Stats()
	assert.Equal(t, 3, stats.PassCount)
	assert.Equal(t, 0, stats.FailCount)
}

func TestGradeCreateErrorLeavesStats(t *testing.T) {
	fake := &fakeGrades{
		items:  []model.Grade{{ID: 1, Score: 80, EnrollmentID: 1}},
		nextID: 1,
	}
	st := newGradeStore(fake)

	fake.mu.Lock()
	fake.createErr = errors.New("rechazado")
	fake.mu.Unlock()

	_, err := st.Create(context.Background(), model.GradeForm{Score: 10, EnrollmentID: 1})
	require.Error(t, err)

	stats := st.Stats()
	assert.Equal(t, 1, stats.Total)
	assert.InDelta(t, 80.0, stats.Average, 0.001)
}
