package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"shinmen-coffee/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps snapshots and users in process memory.
// Snapshots round-trip through BSON so callers never share memory with the store.
type MemoryStore struct {
	mu sync.RWMutex

	snapshots map[string][]byte
	users     map[primitive.ObjectID]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string][]byte),
		users:     make(map[primitive.ObjectID]models.User),
	}
}

func (m *MemoryStore) LoadSnapshot(_ context.Context, key string) (models.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.snapshots[key]
	if !ok {
		return models.Snapshot{}, ErrNotFound
	}
	var snap models.Snapshot
	if err := bson.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return snap, nil
}

func (m *MemoryStore) SaveSnapshot(_ context.Context, snap models.Snapshot) error {
	raw, err := bson.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.Key, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snap.Key] = raw
	return nil
}

func (m *MemoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return models.User{}, ErrAlreadyExists
		}
	}
	user.ID = primitive.NewObjectID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *MemoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *MemoryStore) FindUserByID(_ context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[oid]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) UpdatePreferences(_ context.Context, id string, prefs models.Preferences) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[oid]
	if !ok {
		return ErrNotFound
	}
	u.Preferences = prefs
	m.users[oid] = u
	return nil
}
