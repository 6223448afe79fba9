package usecase

import (
	"context"
	"time"

	"railmadad/internal/domain/entity"
)

// IssuedChallenge describes a code that was sent.
type IssuedChallenge struct {
	Phone     string
	ExpiresAt time.Time
}

// OTPChannel is the self-issued phone code fallback. At most one challenge
// is live per client session.
type OTPChannel interface {
	IssueChallenge(ctx context.Context, clientSessionID, phone, captchaToken string) (*IssuedChallenge, error)
	Verify(ctx context.Context, clientSessionID, code string) (*entity.OTPChallenge, error)
}
