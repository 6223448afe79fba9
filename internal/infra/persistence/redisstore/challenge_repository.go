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

type challengeRepository struct {
	client *redis.Client
	prefix string
	otpTTL time.Duration
}

// NewChallengeRepository keeps OTP challenges as verificationData JSON and
// MFA states as JSON with a Redis expiry.
func NewChallengeRepository(client *redis.Client, cfg *config.Config) repository.ChallengeRepository {
	return &challengeRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
		otpTTL: cfg.OTP.TTL,
	}
}

func (r *challengeRepository) otpKey(clientSessionID string) string {
	return r.prefix + ":otp:" + clientSessionID
}

func (r *challengeRepository) mfaKey(clientSessionID string) string {
	return r.prefix + ":mfa:" + clientSessionID
}

// SaveOTP keeps the key for twice the code lifetime: expiry is judged by the
// caller from the stored timestamp, so an expired code must still be
// readable for a while to be reported as expired rather than missing.
func (r *challengeRepository) SaveOTP(ctx context.Context, clientSessionID string, challenge *entity.OTPChallenge) error {
	data, err := json.Marshal(challenge.ToVerificationData())
	if err != nil {
		return errors.Wrap(err, "failed to marshal otp challenge")
	}

	err = r.client.Set(ctx, r.otpKey(clientSessionID), data, 2*r.otpTTL).Err()

	return errors.Wrap(err, "failed to save otp challenge")
}

func (r *challengeRepository) FindOTP(ctx context.Context, clientSessionID string) (*entity.OTPChallenge, error) {
	data, err := r.client.Get(ctx, r.otpKey(clientSessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to load otp challenge")
	}

	var stored entity.VerificationData
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal otp challenge")
	}

	return stored.ToChallenge(r.otpTTL), nil
}

func (r *challengeRepository) DeleteOTP(ctx context.Context, clientSessionID string) error {
	return errors.Wrap(r.client.Del(ctx, r.otpKey(clientSessionID)).Err(), "failed to delete otp challenge")
}

// consumeRetries bounds the optimistic transaction retries of ConsumeOTP
// when another request touches the same challenge concurrently.
const consumeRetries = 4

// ConsumeOTP reads, judges and deletes or updates the challenge inside a
// WATCH/MULTI transaction, so two requests can never both consume the code.
func (r *challengeRepository) ConsumeOTP(ctx context.Context, clientSessionID, code string, now time.Time, maxAttempts int) (*entity.OTPChallenge, error) {
	key := r.otpKey(clientSessionID)

	for range consumeRetries {
		var matched *entity.OTPChallenge

		err := r.client.Watch(ctx, func(tx *redis.Tx) error {
			data, err := tx.Get(ctx, key).Bytes()
			if err != nil {
				return err
			}

			var stored entity.VerificationData
			if err := json.Unmarshal(data, &stored); err != nil {
				return errors.Wrap(err, "failed to unmarshal otp challenge")
			}
			challenge := stored.ToChallenge(r.otpTTL)

			if challenge.Expired(now) {
				if err := r.deleteIn(ctx, tx, key); err != nil {
					return err
				}

				return repository.ErrChallengeExpired
			}

			if !challenge.Matches(code) {
				challenge.Attempts++
				if challenge.Attempts >= maxAttempts {
					if err := r.deleteIn(ctx, tx, key); err != nil {
						return err
					}

					return repository.ErrOTPAttemptsExceeded
				}

				updated, err := json.Marshal(challenge.ToVerificationData())
				if err != nil {
					return errors.Wrap(err, "failed to marshal otp challenge")
				}

				_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
					pipe.Set(ctx, key, updated, redis.KeepTTL)

					return nil
				})
				if err != nil {
					return err
				}

				return repository.ErrOTPMismatch
			}

			if err := r.deleteIn(ctx, tx, key); err != nil {
				return err
			}
			matched = challenge

			return nil
		}, key)

		switch {
		case errors.Is(err, redis.TxFailedErr):
			continue
		case errors.Is(err, redis.Nil):
			return nil, repository.ErrChallengeNotFound
		case errors.Is(err, repository.ErrChallengeExpired),
			errors.Is(err, repository.ErrOTPMismatch),
			errors.Is(err, repository.ErrOTPAttemptsExceeded):
			return nil, err
		case err != nil:
			return nil, errors.Wrap(err, "failed to consume otp challenge")
		}

		return matched, nil
	}

	return nil, errors.New("otp challenge is contended, giving up")
}

func (r *challengeRepository) deleteIn(ctx context.Context, tx *redis.Tx, key string) error {
	_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)

		return nil
	})

	return err
}

func (r *challengeRepository) SaveMFA(ctx context.Context, clientSessionID string, state *entity.MFAChallengeState, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to marshal mfa state")
	}

	return errors.Wrap(r.client.Set(ctx, r.mfaKey(clientSessionID), data, ttl).Err(), "failed to save mfa state")
}

func (r *challengeRepository) FindMFA(ctx context.Context, clientSessionID string) (*entity.MFAChallengeState, error) {
	data, err := r.client.Get(ctx, r.mfaKey(clientSessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrMFAStateNotFound
		}

		return nil, errors.Wrap(err, "failed to load mfa state")
	}

	var state entity.MFAChallengeState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal mfa state")
	}

	return &state, nil
}

func (r *challengeRepository) DeleteMFA(ctx context.Context, clientSessionID string) error {
	return errors.Wrap(r.client.Del(ctx, r.mfaKey(clientSessionID)).Err(), "failed to delete mfa state")
}
