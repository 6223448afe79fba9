// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"railmadad/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when a client session has no snapshot.
var ErrSnapshotNotFound = errors.New("session snapshot not found")

// SnapshotRepository persists the single session snapshot of each client
// session. Save replaces the whole record in one write.
type SnapshotRepository interface {
	Save(ctx context.Context, clientSessionID string, snapshot *entity.SessionSnapshot) error

	// Find returns ErrSnapshotNotFound when nothing is stored.
	Find(ctx context.Context, clientSessionID string) (*entity.SessionSnapshot, error)

	Delete(ctx context.Context, clientSessionID string) error
}
