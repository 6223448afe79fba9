package service

import (
	"context"

	"railmadad/internal/domain/entity"
)

// CredentialStore abstracts the external identity provider.
// Implementations translate provider errors onto the domain error kinds and
// return *errors.MFARequiredError when a second factor is pending.
type CredentialStore interface {
	// SignInEmail authenticates an email/password pair.
	SignInEmail(ctx context.Context, email, password string) (*entity.AuthResult, error)

	// SignUpEmail creates a provider account and signs it in.
	SignUpEmail(ctx context.Context, email, password, displayName string) (*entity.AuthResult, error)

	// SendEmailVerification mails a verification link to the signed-in user.
	SendEmailVerification(ctx context.Context, idToken string) error

	// SignInOAuth exchanges the Google ID token obtained by the browser popup.
	// An empty token means the popup was closed.
	SignInOAuth(ctx context.Context, providerIDToken string) (*entity.AuthResult, error)

	// SendPasswordReset mails a password reset link.
	SendPasswordReset(ctx context.Context, email string) error

	// StartMFA sends the SMS code for a pending second-factor sign-in and
	// returns the challenge with its provider session filled in.
	StartMFA(ctx context.Context, challenge *entity.MFAChallengeState, captchaToken string) (*entity.MFAChallengeState, error)

	// ResolveMFA completes a second-factor sign-in with the code the user typed.
	ResolveMFA(ctx context.Context, challenge *entity.MFAChallengeState, code string) (*entity.AuthResult, error)
}
