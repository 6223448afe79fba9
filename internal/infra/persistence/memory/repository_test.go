package memory

import (
	"context"
	"testing"
	"time"

	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepository_ReturnsCopies(t *testing.T) {
	repo := NewSnapshotRepository(time.Hour)
	ctx := context.Background()

	snapshot := &entity.SessionSnapshot{IsAuthenticated: true, Role: entity.RolePassenger}
	require.NoError(t, repo.Save(ctx, "sid", snapshot))

	snapshot.Role = entity.RoleAdmin

	found, err := repo.Find(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, entity.RolePassenger, found.Role)

	require.NoError(t, repo.Delete(ctx, "sid"))
	_, err = repo.Find(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_ExpiresAfterTTL(t *testing.T) {
	repo := NewSnapshotRepository(time.Hour).(*snapshotRepository)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	admin := &entity.SessionSnapshot{IsAuthenticated: true, Role: entity.RoleAdmin, AdminToken: "a", IsAdminSession: true}
	require.NoError(t, repo.Save(ctx, "stale", admin))

	now = now.Add(time.Hour)
	_, err := repo.Find(ctx, "stale")
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = repo.Find(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	require.NoError(t, repo.Save(ctx, "forgotten", admin))
	now = now.Add(2 * time.Hour)
	require.NoError(t, repo.Save(ctx, "fresh", admin))
	assert.Len(t, repo.snapshots, 1)
}

func TestChallengeRepository_OTPSingleSlot(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "111111"}))
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "222222"}))

	found, err := repo.FindOTP(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "222222", found.Code)

	_, err = repo.FindOTP(ctx, "other")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestChallengeRepository_MFAExpiry(t *testing.T) {
	repo := NewChallengeRepository().(*challengeRepository)
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.SaveMFA(ctx, "sid", &entity.MFAChallengeState{ResolverHandle: "h"}, time.Minute))

	found, err := repo.FindMFA(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "h", found.ResolverHandle)

	now = now.Add(time.Minute + time.Second)
	_, err = repo.FindMFA(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrMFAStateNotFound)
}

func TestChallengeRepository_ConsumeOTP(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "123456", IssuedAt: issued, TTL: 15 * time.Minute}))

	_, err := repo.ConsumeOTP(ctx, "sid", "000000", issued, 3)
	assert.ErrorIs(t, err, repository.ErrOTPMismatch)
	_, err = repo.ConsumeOTP(ctx, "sid", "000000", issued, 3)
	assert.ErrorIs(t, err, repository.ErrOTPMismatch)

	challenge, err := repo.ConsumeOTP(ctx, "sid", " 123456 ", issued, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, challenge.Attempts)

	_, err = repo.ConsumeOTP(ctx, "sid", "123456", issued, 3)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestChallengeRepository_ConsumeOTPAttemptsAndExpiry(t *testing.T) {
	repo := NewChallengeRepository()
	ctx := context.Background()

	issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	challenge := &entity.OTPChallenge{Code: "123456", IssuedAt: issued, TTL: 15 * time.Minute}

	require.NoError(t, repo.SaveOTP(ctx, "sid", challenge))
	_, err := repo.ConsumeOTP(ctx, "sid", "000000", issued, 1)
	assert.ErrorIs(t, err, repository.ErrOTPAttemptsExceeded)
	_, err = repo.FindOTP(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)

	require.NoError(t, repo.SaveOTP(ctx, "sid", challenge))
	_, err = repo.ConsumeOTP(ctx, "sid", "123456", issued.Add(15*time.Minute+time.Second), 3)
	assert.ErrorIs(t, err, repository.ErrChallengeExpired)
	_, err = repo.FindOTP(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}
