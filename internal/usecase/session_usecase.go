// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
)

// State is the position of a client session in the sign-in state machine.
type State string

const (
	StateAnonymous          State = "anonymous"
	StateAuthenticating     State = "authenticating"
	StateMFARequired        State = "mfa_required"
	StateOTPSent            State = "otp_sent"
	StateRoleResolving      State = "role_resolving"
	StateSessionEstablished State = "session_established"
	StateFailed             State = "failed"
)

// EmailSignInInput is the login form.
type EmailSignInInput struct {
	ClientSessionID string
	Email           string
	Password        string
	TermsAccepted   bool
	CaptchaToken    string // used only if a second factor has to be sent
}

// SignUpInput is the registration form. Role is the role the user asked for.
type SignUpInput struct {
	ClientSessionID string
	Email           string
	Password        string
	TermsAccepted   bool
	Role            entity.Role
	Profile         entity.ProfileDetails
}

// OAuthSignInInput carries the Google ID token obtained by the popup.
type OAuthSignInInput struct {
	ClientSessionID string
	ProviderIDToken string
	TermsAccepted   bool
}

// MFAResolveInput carries the second-factor code.
type MFAResolveInput struct {
	ClientSessionID string
	Code            string
}

// PhoneOTPInput requests a code for the fallback phone path.
type PhoneOTPInput struct {
	ClientSessionID string
	Phone           string
	TermsAccepted   bool
	CaptchaToken    string
}

// PhoneVerifyInput submits the code received by SMS.
type PhoneVerifyInput struct {
	ClientSessionID string
	Code            string
}

// PasswordResetInput requests a reset link.
type PasswordResetInput struct {
	Email string
}

// MFAPrompt is shown while a second factor is pending.
type MFAPrompt struct {
	Hint      entity.MFAHint `json:"hint"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

// OTPPrompt is shown while a phone code is pending.
type OTPPrompt struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginOutput is the result of every session operation. ClientSessionID is
// set when a session was established: the snapshot is stored under this new
// id and the caller's previous id no longer refers to anything.
type LoginOutput struct {
	ClientSessionID string                  `json:"-"`
	State           State                   `json:"state"`
	Snapshot        *entity.SessionSnapshot `json:"session,omitempty"`
	Redirect        string                  `json:"redirect,omitempty"`
	Notices         []*domainerrors.Notice  `json:"notices,omitempty"`
	MFA             *MFAPrompt              `json:"mfa,omitempty"`
	OTP             *OTPPrompt              `json:"otp,omitempty"`
	FirstLogin      bool                    `json:"firstLogin"`
}

// SessionUsecase reconciles every sign-in path into one session snapshot.
// Failures are returned as domain AppErrors; a non-nil output may accompany
// an error to carry extra notices.
type SessionUsecase interface {
	SignInEmail(ctx context.Context, input *EmailSignInInput) (*LoginOutput, error)
	SignUpEmail(ctx context.Context, input *SignUpInput) (*LoginOutput, error)
	SignInOAuth(ctx context.Context, input *OAuthSignInInput) (*LoginOutput, error)
	ResolveMFA(ctx context.Context, input *MFAResolveInput) (*LoginOutput, error)
	IssuePhoneOTP(ctx context.Context, input *PhoneOTPInput) (*LoginOutput, error)
	VerifyPhoneOTP(ctx context.Context, input *PhoneVerifyInput) (*LoginOutput, error)
	SendPasswordReset(ctx context.Context, input *PasswordResetInput) (*LoginOutput, error)
	Logout(ctx context.Context, clientSessionID string) (*LoginOutput, error)
	CurrentSession(ctx context.Context, clientSessionID string) (*LoginOutput, error)
}
