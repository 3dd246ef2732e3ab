// Package repository internal/domain/repository/snapshot_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/mfinch/crossrate/internal/domain/entity"
)

// ErrSnapshotNotFound indicates no usable snapshot exists in the store.
// Both a missing and an unreadable snapshot surface as this error; the
// distinction only matters for logging inside the store.
var ErrSnapshotNotFound = errors.New("no cached snapshot available")

// SnapshotRepository defines the interface for persisted rate snapshots
type SnapshotRepository interface {
	// Load returns the most recently stored snapshot, or ErrSnapshotNotFound
	Load(ctx context.Context) (*entity.RateSnapshot, error)

	// Store replaces the stored snapshot wholesale
	Store(ctx context.Context, snapshot *entity.RateSnapshot) error
}
