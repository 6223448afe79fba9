package service

import "context"

// CaptchaLease is held for the duration of one challenge issuance.
type CaptchaLease interface {
	Release()
}

// CaptchaVerifier checks a bot-protection token and hands out a lease that
// the caller must release on every exit path.
type CaptchaVerifier interface {
	Acquire(ctx context.Context, token, action string) (CaptchaLease, error)
}
