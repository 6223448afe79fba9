package redisstore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client, *config.Config) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Redis:   &config.RedisConfig{KeyPrefix: "rm"},
		Session: &config.SessionConfig{TTL: time.Hour},
		OTP:     &config.OTPConfig{TTL: 15 * time.Minute},
	}

	return mr, client, cfg
}

func TestSnapshotRepository_SaveFindDelete(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewSnapshotRepository(client, cfg)
	ctx := context.Background()

	snapshot := &entity.SessionSnapshot{
		IsAuthenticated: true,
		Role:            entity.RoleAdmin,
		AuthToken:       "id-token",
		AdminToken:      "admin-token",
		Email:           "staff@example.com",
		IsAdminSession:  true,
	}
	require.NoError(t, repo.Save(ctx, "sid-1", snapshot))

	raw, err := mr.Get("rm:snapshot:sid-1")
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "admin", stored["userRole"])
	assert.Equal(t, true, stored["isAuthenticated"])
	assert.Equal(t, "staff@example.com", stored["userEmail"])
	assert.Equal(t, time.Hour, mr.TTL("rm:snapshot:sid-1"))

	found, err := repo.Find(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, found.Role)
	assert.Equal(t, "admin-token", found.AdminToken)

	require.NoError(t, repo.Delete(ctx, "sid-1"))
	_, err = repo.Find(ctx, "sid-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSnapshotRepository_SaveReplacesWholeRecord(t *testing.T) {
	_, client, cfg := setupMiniredis(t)
	repo := NewSnapshotRepository(client, cfg)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sid", &entity.SessionSnapshot{
		IsAuthenticated: true, Role: entity.RoleAdmin, AdminToken: "a", IsAdminSession: true,
	}))
	require.NoError(t, repo.Save(ctx, "sid", &entity.SessionSnapshot{
		IsAuthenticated: true, Role: entity.RolePassenger,
	}))

	found, err := repo.Find(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, entity.RolePassenger, found.Role)
	assert.Empty(t, found.AdminToken)
	assert.False(t, found.IsAdminSession)
}

func TestChallengeRepository_OTPStoredAsVerificationData(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewChallengeRepository(client, cfg)
	ctx := context.Background()

	issuedAt := time.UnixMilli(1_700_000_000_000)
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{
		Code: "123456", Phone: "+919999999999", IssuedAt: issuedAt, TTL: 15 * time.Minute,
	}))

	raw, err := mr.Get("rm:otp:sid")
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"123456","phone":"+919999999999","timestamp":1700000000000}`, raw)
	assert.Equal(t, 30*time.Minute, mr.TTL("rm:otp:sid"))

	found, err := repo.FindOTP(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "123456", found.Code)
	assert.True(t, issuedAt.Equal(found.IssuedAt))
	assert.Equal(t, 15*time.Minute, found.TTL)

	require.NoError(t, repo.DeleteOTP(ctx, "sid"))
	_, err = repo.FindOTP(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestChallengeRepository_MFAExpires(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewChallengeRepository(client, cfg)
	ctx := context.Background()

	state := &entity.MFAChallengeState{
		ResolverHandle: "pending-cred",
		Hint:           entity.MFAHint{EnrollmentID: "enr-1", PhoneInfo: "+91******9999"},
		Session:        "session-info",
	}
	require.NoError(t, repo.SaveMFA(ctx, "sid", state, 5*time.Minute))

	found, err := repo.FindMFA(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "pending-cred", found.ResolverHandle)
	assert.Equal(t, "enr-1", found.Hint.EnrollmentID)

	mr.FastForward(5*time.Minute + time.Second)

	_, err = repo.FindMFA(ctx, "sid")
	assert.ErrorIs(t, err, repository.ErrMFAStateNotFound)
}

func TestChallengeRepository_ConsumeOTP(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewChallengeRepository(client, cfg)
	ctx := context.Background()

	issued := time.Now().Truncate(time.Millisecond)
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "123456", Phone: "+919876543210", IssuedAt: issued}))

	_, err := repo.ConsumeOTP(ctx, "sid", "000000", issued.Add(time.Minute), 3)
	assert.ErrorIs(t, err, repository.ErrOTPMismatch)

	// a wrong code keeps the expiry set at issue
	assert.Equal(t, 30*time.Minute, mr.TTL("rm:otp:sid"))

	found, err := repo.FindOTP(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, 1, found.Attempts)

	challenge, err := repo.ConsumeOTP(ctx, "sid", "123456", issued.Add(time.Minute), 3)
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", challenge.Phone)
	assert.False(t, mr.Exists("rm:otp:sid"))

	_, err = repo.ConsumeOTP(ctx, "sid", "123456", issued.Add(time.Minute), 3)
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)
}

func TestChallengeRepository_ConsumeOTPAttemptsExceeded(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewChallengeRepository(client, cfg)
	ctx := context.Background()

	issued := time.Now()
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "123456", IssuedAt: issued}))

	for range 2 {
		_, err := repo.ConsumeOTP(ctx, "sid", "000000", issued, 3)
		assert.ErrorIs(t, err, repository.ErrOTPMismatch)
	}

	_, err := repo.ConsumeOTP(ctx, "sid", "000000", issued, 3)
	assert.ErrorIs(t, err, repository.ErrOTPAttemptsExceeded)
	assert.False(t, mr.Exists("rm:otp:sid"))
}

func TestChallengeRepository_ConsumeOTPExpired(t *testing.T) {
	mr, client, cfg := setupMiniredis(t)
	repo := NewChallengeRepository(client, cfg)
	ctx := context.Background()

	issued := time.Now()
	require.NoError(t, repo.SaveOTP(ctx, "sid", &entity.OTPChallenge{Code: "123456", IssuedAt: issued}))

	_, err := repo.ConsumeOTP(ctx, "sid", "123456", issued.Add(15*time.Minute+time.Second), 3)
	assert.ErrorIs(t, err, repository.ErrChallengeExpired)
	assert.False(t, mr.Exists("rm:otp:sid"))
}
