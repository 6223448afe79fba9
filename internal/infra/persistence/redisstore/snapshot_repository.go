package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type snapshotRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewSnapshotRepository stores one JSON value per client session, so a save
// is a single SET and readers never see half a snapshot.
func NewSnapshotRepository(client *redis.Client, cfg *config.Config) repository.SnapshotRepository {
	return &snapshotRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
		ttl:    cfg.Session.TTL,
	}
}

func (r *snapshotRepository) key(clientSessionID string) string {
	return r.prefix + ":snapshot:" + clientSessionID
}

func (r *snapshotRepository) Save(ctx context.Context, clientSessionID string, snapshot *entity.SessionSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to marshal snapshot")
	}

	return errors.Wrap(r.client.Set(ctx, r.key(clientSessionID), data, r.ttl).Err(), "failed to save snapshot")
}

func (r *snapshotRepository) Find(ctx context.Context, clientSessionID string) (*entity.SessionSnapshot, error) {
	data, err := r.client.Get(ctx, r.key(clientSessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to load snapshot")
	}

	var snapshot entity.SessionSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	return &snapshot, nil
}

func (r *snapshotRepository) Delete(ctx context.Context, clientSessionID string) error {
	return errors.Wrap(r.client.Del(ctx, r.key(clientSessionID)).Err(), "failed to delete snapshot")
}
