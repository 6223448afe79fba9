package repository

import (
	"context"
	"time"

	"railmadad/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when no OTP challenge is pending.
	ErrChallengeNotFound = errors.New("otp challenge not found")
	// ErrMFAStateNotFound is returned when no second-factor sign-in is pending
	// or its state has expired.
	ErrMFAStateNotFound = errors.New("mfa challenge state not found")
	// ErrChallengeExpired is returned by ConsumeOTP for a challenge past its
	// deadline. The challenge is gone afterwards.
	ErrChallengeExpired = errors.New("otp challenge expired")
	// ErrOTPMismatch is returned by ConsumeOTP for a wrong code while
	// attempts remain.
	ErrOTPMismatch = errors.New("otp code mismatch")
	// ErrOTPAttemptsExceeded is returned by ConsumeOTP for the wrong code
	// that used up the last attempt. The challenge is gone afterwards.
	ErrOTPAttemptsExceeded = errors.New("otp attempts exceeded")
)

// ChallengeRepository holds the transient challenges of a client session.
type ChallengeRepository interface {
	// SaveOTP stores the challenge, replacing any previous one.
	SaveOTP(ctx context.Context, clientSessionID string, challenge *entity.OTPChallenge) error

	// FindOTP returns ErrChallengeNotFound when nothing is pending.
	FindOTP(ctx context.Context, clientSessionID string) (*entity.OTPChallenge, error)

	DeleteOTP(ctx context.Context, clientSessionID string) error

	// ConsumeOTP checks code against the pending challenge as of now in one
	// atomic step, so a code is accepted at most once. A match deletes the
	// challenge and returns it. Expiry is judged before the code.
	ConsumeOTP(ctx context.Context, clientSessionID, code string, now time.Time, maxAttempts int) (*entity.OTPChallenge, error)

	// SaveMFA stores the pending second-factor state for ttl.
	SaveMFA(ctx context.Context, clientSessionID string, state *entity.MFAChallengeState, ttl time.Duration) error

	// FindMFA returns ErrMFAStateNotFound when nothing is pending.
	FindMFA(ctx context.Context, clientSessionID string) (*entity.MFAChallengeState, error)

	DeleteMFA(ctx context.Context, clientSessionID string) error
}
