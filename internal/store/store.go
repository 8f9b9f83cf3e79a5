package store

import (
	"context"
	"maps"
	"sync"

	"github.com/rs/zerolog"
)

// Status is the request lifecycle state of a store.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Filter is the query-string filter applied to list fetches.
type Filter = map[string]string

// Entity is any backend record with a numeric identity.
type Entity interface {
	EntityID() int
}

// Service is the repository surface a store drives. Every entity service
// satisfies it; tests substitute fakes.
type Service[E Entity, C any, U any] interface {
	List(ctx context.Context, filter Filter) ([]E, error)
	Create(ctx context.Context, form C) (E, error)
	Update(ctx context.Context, id int, form U) (E, error)
	Delete(ctx context.Context, id int) error
}

// Store owns the in-memory collection for one entity type and keeps it
// consistent with the latest mutation without refetching.
//
// Overlapping calls: mutations are serialized by opMu, and every fetch
// takes a sequence number — a fetch completion that is no longer the
// newest write against the collection is discarded instead of clobbering
// it.
type Store[E Entity, C any, U any] struct {
	svc Service[E, C, U]
	log zerolog.Logger

	opMu sync.Mutex // serializes mutating operations

	mu     sync.Mutex // guards everything below
	items  []E
	status Status
	err    error
	filter Filter
	seq    uint64 // bumped by every fetch start and mutation commit
}

// New builds a store and performs the initial fetch with the given
// filter, mirroring a mount. The fetch outcome lands in Status/Err.
func New[E Entity, C any, U any](ctx context.Context, svc Service[E, C, U], filter Filter, log zerolog.Logger) *Store[E, C, U] {
	s := &Store[E, C, U]{
		svc:    svc,
		log:    log.With().Str("component", "store").Logger(),
		status: StatusIdle,
		filter: maps.Clone(filter),
	}
	_ = s.Fetch(ctx)
	return s
}

// Fetch replaces the whole collection with the backend's view. On
// failure the stale collection stays in place and the error is stored.
func (s *Store[E, C, U]) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.seq++
	seq := s.seq
	filter := maps.Clone(s.filter)
	s.mu.Unlock()

	items, err := s.svc.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		// A newer fetch or mutation already won; this response is stale.
		s.log.Debug().Uint64("seq", seq).Msg("discarding stale fetch result")
		return nil
	}
	if err != nil {
		s.status = StatusError
		s.err = err
		return err
	}
	s.items = items
	s.status = StatusSuccess
	return nil
}

// SetFilter swaps the list filter and refetches when it changed.
func (s *Store[E, C, U]) SetFilter(ctx context.Context, filter Filter) error {
	s.mu.Lock()
	if maps.Equal(s.filter, filter) {
		s.mu.Unlock()
		return nil
	}
	s.filter = maps.Clone(filter)
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// Create persists a new entity and appends the backend's echo at the
// tail of the collection. On failure the collection is untouched and the
// error is returned for the caller to surface.
func (s *Store[E, C, U]) Create(ctx context.Context, form C) (E, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading()
	item, err := s.svc.Create(ctx, form)
	if err != nil {
		s.setError(err)
		return item, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.commit()
	s.mu.Unlock()
	return item, nil
}

// Update patches an entity and replaces the matching element in place,
// preserving collection order.
func (s *Store[E, C, U]) Update(ctx context.Context, id int, form U) (E, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading()
	item, err := s.svc.Update(ctx, id, form)
	if err != nil {
		s.setError(err)
		return item, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = item
			break
		}
	}
	s.commit()
	s.mu.Unlock()
	return item, nil
}

// Delete removes an entity. Deleting an id absent from the collection is
// a no-op once the backend call succeeds.
func (s *Store[E, C, U]) Delete(ctx context.Context, id int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading()
	if err := s.svc.Delete(ctx, id); err != nil {
		s.setError(err)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.commit()
	s.mu.Unlock()
	return nil
}

// Items returns a copy of the owned collection in its current order.
func (s *Store[E, C, U]) Items() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Status returns the current request lifecycle state.
func (s *Store[E, C, U]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the stored error from the last failed operation, nil
// after a success.
func (s *Store[E, C, U]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Store[E, C, U]) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = nil
	s.mu.Unlock()
}

func (s *Store[E, C, U]) setError(err error) {
	s.mu.Lock()
	s.status = StatusError
	s.err = err
	s.mu.Unlock()
}

// commit marks a successful mutation. Bumping seq invalidates any fetch
// still in flight so its stale snapshot cannot overwrite this change.
// Callers hold s.mu.
func (s *Store[E, C, U]) commit() {
	s.status = StatusSuccess
	s.err = nil
	s.seq++
}
