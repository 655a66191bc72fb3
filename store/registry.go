package store

import (
	"context"
	"errors"
	"fmt"

	"shinmen-coffee/catalog"
	"shinmen-coffee/models"
	"shinmen-coffee/storage"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is how many session stores a registry keeps in memory
const DefaultCapacity = 10000

// Registry hands out one Store per session.
// Least recently used stores are evicted past capacity; their persisted subset
// rehydrates from the snapshot repository on the next request.
type Registry struct {
	sessions *lru.Cache[string, *Store]
	loads    singleflight.Group
	repo     storage.SnapshotRepository
	opts     []Option
}

// NewRegistry creates a registry of DefaultCapacity whose stores mirror into repo. repo may be nil.
func NewRegistry(repo storage.SnapshotRepository, opts ...Option) *Registry {
	return NewBoundedRegistry(repo, DefaultCapacity, opts...)
}

// NewBoundedRegistry creates a registry keeping at most capacity stores in memory.
// A capacity below one falls back to DefaultCapacity.
func NewBoundedRegistry(repo storage.SnapshotRepository, capacity int, opts ...Option) *Registry {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	// lru.New only fails for a non-positive size
	sessions, _ := lru.New[string, *Store](capacity)
	return &Registry{
		sessions: sessions,
		repo:     repo,
		opts:     opts,
	}
}

// Len reports how many session stores are held in memory
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Session returns the store for sessionID, creating it on first use.
// A new store is seeded with the catalog and hydrated from its persisted snapshot.
// Concurrent first requests for one session share a single load.
func (r *Registry) Session(ctx context.Context, sessionID string) (*Store, error) {
	if s, ok := r.sessions.Get(sessionID); ok {
		return s, nil
	}

	v, err, _ := r.loads.Do(sessionID, func() (any, error) {
		if s, ok := r.sessions.Get(sessionID); ok {
			return s, nil
		}
		s, err := r.load(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if existing, found, _ := r.sessions.PeekOrAdd(sessionID, s); found {
			return existing, nil
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

func (r *Registry) load(ctx context.Context, sessionID string) (*Store, error) {
	key := SnapshotKey(sessionID)
	opts := r.opts
	if r.repo != nil {
		opts = append(append([]Option{}, r.opts...), WithSnapshots(r.repo, key))
	}
	s := New(opts...)
	s.SetMenu(catalog.Items())

	if r.repo == nil {
		return s, nil
	}
	snap, err := r.repo.LoadSnapshot(ctx, key)
	switch {
	case err == nil:
		s.Hydrate(snap)
	case errors.Is(err, storage.ErrNotFound):
	default:
		return nil, fmt.Errorf("hydrate session %s: %w", sessionID, err)
	}
	return s, nil
}

// UpdateOrderStatus moves an order of a session along its lifecycle
func (r *Registry) UpdateOrderStatus(ctx context.Context, sessionID, orderID string, status models.OrderStatus) error {
	s, err := r.Session(ctx, sessionID)
	if err != nil {
		return err
	}
	_, err = s.UpdateOrderStatus(orderID, status)
	return err
}

// OrderStatus reports the status an order of a session currently holds
func (r *Registry) OrderStatus(ctx context.Context, sessionID, orderID string) (models.OrderStatus, error) {
	s, err := r.Session(ctx, sessionID)
	if err != nil {
		return "", err
	}
	order, ok := s.Order(orderID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	return order.Status, nil
}
