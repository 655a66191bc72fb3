// Package storage persists session snapshots and registered accounts.
package storage

import (
	"context"
	"errors"

	"shinmen-coffee/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// SnapshotRepository stores the persisted subset of a session under a fixed key
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context, key string) (models.Snapshot, error)
	SaveSnapshot(ctx context.Context, snap models.Snapshot) error
}

// UserRepository stores registered accounts
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	UpdatePreferences(ctx context.Context, id string, prefs models.Preferences) error
}
