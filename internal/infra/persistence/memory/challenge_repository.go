package memory

import (
	"context"
	"sync"
	"time"

	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"
)

type mfaEntry struct {
	state     entity.MFAChallengeState
	expiresAt time.Time
}

type challengeRepository struct {
	mu  sync.Mutex
	otp map[string]entity.OTPChallenge
	mfa map[string]mfaEntry
	now func() time.Time
}

// NewChallengeRepository creates an in-memory challenge repository. OTP
// entries are kept until deleted; MFA entries vanish after their TTL.
func NewChallengeRepository() repository.ChallengeRepository {
	return &challengeRepository{
		otp: make(map[string]entity.OTPChallenge),
		mfa: make(map[string]mfaEntry),
		now: time.Now,
	}
}

func (r *challengeRepository) SaveOTP(_ context.Context, clientSessionID string, challenge *entity.OTPChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.otp[clientSessionID] = *challenge

	return nil
}

func (r *challengeRepository) FindOTP(_ context.Context, clientSessionID string) (*entity.OTPChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.otp[clientSessionID]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}

	return &challenge, nil
}

func (r *challengeRepository) DeleteOTP(_ context.Context, clientSessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.otp, clientSessionID)

	return nil
}

// ConsumeOTP runs under the repository mutex, which makes the check and the
// delete one step.
func (r *challengeRepository) ConsumeOTP(_ context.Context, clientSessionID, code string, now time.Time, maxAttempts int) (*entity.OTPChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.otp[clientSessionID]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}

	if challenge.Expired(now) {
		delete(r.otp, clientSessionID)

		return nil, repository.ErrChallengeExpired
	}

	if !challenge.Matches(code) {
		challenge.Attempts++
		if challenge.Attempts >= maxAttempts {
			delete(r.otp, clientSessionID)

			return nil, repository.ErrOTPAttemptsExceeded
		}
		r.otp[clientSessionID] = challenge

		return nil, repository.ErrOTPMismatch
	}

	delete(r.otp, clientSessionID)

	return &challenge, nil
}

func (r *challengeRepository) SaveMFA(_ context.Context, clientSessionID string, state *entity.MFAChallengeState, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mfa[clientSessionID] = mfaEntry{
		state:     *state,
		expiresAt: r.now().Add(ttl),
	}

	return nil
}

func (r *challengeRepository) FindMFA(_ context.Context, clientSessionID string) (*entity.MFAChallengeState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.mfa[clientSessionID]
	if !ok {
		return nil, repository.ErrMFAStateNotFound
	}
	if r.now().After(entry.expiresAt) {
		delete(r.mfa, clientSessionID)

		return nil, repository.ErrMFAStateNotFound
	}

	return &entry.state, nil
}

func (r *challengeRepository) DeleteMFA(_ context.Context, clientSessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.mfa, clientSessionID)

	return nil
}
