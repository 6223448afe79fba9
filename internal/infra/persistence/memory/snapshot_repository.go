// Package memory provides process-local repositories for single-instance
// deployments and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"
)

type snapshotEntry struct {
	snapshot  entity.SessionSnapshot
	expiresAt time.Time
}

type snapshotRepository struct {
	mu        sync.Mutex
	snapshots map[string]snapshotEntry
	ttl       time.Duration
	now       func() time.Time
}

// NewSnapshotRepository creates an in-memory snapshot repository whose
// entries live for ttl after their last save, like the Redis store.
func NewSnapshotRepository(ttl time.Duration) repository.SnapshotRepository {
	return &snapshotRepository{
		snapshots: make(map[string]snapshotEntry),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (r *snapshotRepository) Save(_ context.Context, clientSessionID string, snapshot *entity.SessionSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)
	r.snapshots[clientSessionID] = snapshotEntry{
		snapshot:  *snapshot,
		expiresAt: now.Add(r.ttl),
	}

	return nil
}

func (r *snapshotRepository) Find(_ context.Context, clientSessionID string) (*entity.SessionSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.snapshots[clientSessionID]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}
	if r.now().After(entry.expiresAt) {
		delete(r.snapshots, clientSessionID)

		return nil, repository.ErrSnapshotNotFound
	}

	return &entry.snapshot, nil
}

func (r *snapshotRepository) Delete(_ context.Context, clientSessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.snapshots, clientSessionID)

	return nil
}

// sweep drops expired entries so sessions that are never read again do not
// pile up. Callers hold mu.
func (r *snapshotRepository) sweep(now time.Time) {
	for id, entry := range r.snapshots {
		if now.After(entry.expiresAt) {
			delete(r.snapshots, id)
		}
	}
}
