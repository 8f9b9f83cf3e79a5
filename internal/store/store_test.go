package store

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusga/sga-admin/internal/model"
)

// fakeSubjects is an in-memory Service[model.Subject, ...] so store
// behavior is tested without a backend.
type fakeSubjects struct {
	mu         sync.Mutex
	items      []model.Subject
	nextID     int
	listErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	listCalls  int
	lastFilter Filter

	// blockCall makes the numbered List call wait on release, so tests
	// can interleave an old in-flight fetch with newer operations.
	blockCall int
	release   chan struct{}
}

func (f *fakeSubjects) List(ctx context.Context, filter Filter) ([]model.Subject, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	f.lastFilter = filter
	err := f.listErr
	snapshot := slices.Clone(f.items)
	block := call == f.blockCall
	release := f.release
	f.mu.Unlock()

	if block {
		<-release
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (f *fakeSubjects) Create(ctx context.Context, form model.SubjectForm) (model.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return model.Subject{}, f.createErr
	}
	f.nextID++
	created := model.Subject{ID: f.nextID, Name: form.Name, InstructorID: form.InstructorID}
	f.items = append(f.items, created)
	return created, nil
}

func (f *fakeSubjects) Update(ctx context.Context, id int, form model.SubjectUpdate) (model.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return model.Subject{}, f.updateErr
	}
	for i, item := range f.items {
		if item.ID == id {
			if form.Name != nil {
				item.Name = *form.Name
			}
			if form.InstructorID != nil {
				item.InstructorID = *form.InstructorID
			}
			f.items[i] = item
			return item, nil
		}
	}
	return model.Subject{}, errors.New("not found")
}

func (f *fakeSubjects) Delete(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSubjects) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func newSubjectStore(fake *fakeSubjects, filter Filter) *Store[model.Subject, model.SubjectForm, model.SubjectUpdate] {
	return New[model.Subject, model.SubjectForm, model.SubjectUpdate](context.Background(), fake, filter, zerolog.Nop())
}

func seeded() *fakeSubjects {
	return &fakeSubjects{
		items: []model.Subject{
			{ID: 1, Name: "Matemáticas", InstructorID: 4},
			{ID: 2, Name: "Historia", InstructorID: 5},
			{ID: 3, Name: "Física", InstructorID: 4},
		},
		nextID: 3,
	}
}

func TestInitialFetchFillsCollection(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	assert.Equal(t, StatusSuccess, st.Status())
	assert.NoError(t, st.Err())
	assert.Len(t, st.Items(), 3)
	assert.Equal(t, 1, fake.calls())
}

func TestCreateAppendsAtTail(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)
	before := st.Items()

	created, err := st.Create(context.Background(), model.SubjectForm{Name: "Algebra", InstructorID: 7})
	require.NoError(t, err)

	after := st.Items()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created, after[len(after)-1])
	assert.Equal(t, "Algebra", after[len(after)-1].Name)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, StatusSuccess, st.Status())
}

func TestUpdateReplacesInPlace(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	name := "Historia Universal"
	updated, err := st.Update(context.Background(), 2, model.SubjectUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Historia Universal", updated.Name)

	items := st.Items()
	require.Len(t, items, 3)
	// Order preserved, only the matching element replaced.
	assert.Equal(t, []int{1, 2, 3}, []int{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, "Historia Universal", items[1].Name)
	assert.Equal(t, "Matemáticas", items[0].Name)

	// A fetch after the update yields exactly the backend's echo, with
	// no client-side merge of stale fields.
	require.NoError(t, st.Fetch(context.Background()))
	items = st.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Historia Universal", items[1].Name)
}

func TestDeleteRemovesElement(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	require.NoError(t, st.Delete(context.Background(), 2))
	items := st.Items()
	require.Len(t, items, 2)
	assert.Equal(t, []int{1, 3}, []int{items[0].ID, items[1].ID})
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	require.NoError(t, st.Delete(context.Background(), 99))
	assert.Len(t, st.Items(), 3)
	assert.Equal(t, StatusSuccess, st.Status())
}

func TestFetchErrorKeepsStaleCollection(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	boom := errors.New("backend caído")
	fake.mu.Lock()
	fake.listErr = boom
	fake.mu.Unlock()

	err := st.Fetch(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusError, st.Status())
	assert.ErrorIs(t, st.Err(), boom)
	// The stale collection stays in place for display.
	assert.Len(t, st.Items(), 3)
}

func TestCreateErrorLeavesCollectionUntouched(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	boom := errors.New("rechazado")
	fake.mu.Lock()
	fake.createErr = boom
	fake.mu.Unlock()

	_, err := st.Create(context.Background(), model.SubjectForm{Name: "Química", InstructorID: 4})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, st.Items(), 3)
	assert.Equal(t, StatusError, st.Status())
}

func TestSetFilterRefetchesOnlyOnChange(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, Filter{"docente": "4"})
	assert.Equal(t, 1, fake.calls())

	// Same filter: no refetch.
	require.NoError(t, st.SetFilter(context.Background(), Filter{"docente": "4"}))
	assert.Equal(t, 1, fake.calls())

	// Changed filter: refetch with the new filter.
	require.NoError(t, st.SetFilter(context.Background(), Filter{"docente": "5"}))
	assert.Equal(t, 2, fake.calls())
	fake.mu.Lock()
	assert.Equal(t, Filter{"docente": "5"}, fake.lastFilter)
	fake.mu.Unlock()
}

func TestStaleFetchCompletionDiscarded(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	// Arm the second List call to hang until released; it will snapshot
	// the current three-element collection.
	fake.mu.Lock()
	fake.blockCall = 2
	fake.release = make(chan struct{})
	fake.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- st.Fetch(context.Background()) }()

	// Wait for the blocked fetch to be in flight.
	deadline := time.Now().Add(2 * time.Second)
	for fake.calls() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("blocked fetch never started")
		}
		time.Sleep(time.Millisecond)
	}

	// A newer fetch completes with a grown collection.
	fake.mu.Lock()
	fake.items = append(fake.items, model.Subject{ID: 4, Name: "Química", InstructorID: 6})
	fake.mu.Unlock()
	require.NoError(t, st.Fetch(context.Background()))
	require.Len(t, st.Items(), 4)

	// Release the old fetch: its three-element snapshot must not win.
	close(fake.release)
	require.NoError(t, <-done)
	assert.Len(t, st.Items(), 4)
	assert.Equal(t, StatusSuccess, st.Status())
}

func TestMutationInvalidatesInFlightFetch(t *testing.T) {
	fake := seeded()
	st := newSubjectStore(fake, nil)

	fake.mu.Lock()
	fake.blockCall = 2
	fake.release = make(chan struct{})
	fake.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- st.Fetch(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for fake.calls() < 2 {
		if time.Now().After(deadline) {
			t.Fatal("blocked fetch never started")
		}
		time.Sleep(time.Millisecond)
	}

	// A create commits while the fetch is still in flight.
	_, err := st.Create(context.Background(), model.SubjectForm{Name: "Algebra", InstructorID: 7})
	require.NoError(t, err)
	require.Len(t, st.Items(), 4)

	close(fake.release)
	require.NoError(t, <-done)
	// The stale pre-create snapshot was discarded.
	assert.Len(t, st.Items(), 4)
}
