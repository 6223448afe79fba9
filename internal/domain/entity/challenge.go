package entity

import (
	"crypto/subtle"
	"strings"
	"time"
)

// OTPChallenge is the single live phone code of a client session.
type OTPChallenge struct {
	Code     string
	Phone    string
	IssuedAt time.Time
	TTL      time.Duration
	Attempts int // wrong codes submitted so far
}

// ExpiresAt returns the wall-clock deadline of the challenge.
func (c *OTPChallenge) ExpiresAt() time.Time {
	return c.IssuedAt.Add(c.TTL)
}

// Expired reports whether more than TTL has elapsed at now.
func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.Sub(c.IssuedAt) > c.TTL
}

// Matches compares code with the challenge code in constant time.
func (c *OTPChallenge) Matches(code string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), []byte(c.Code)) == 1
}

// VerificationData is the persisted form of an OTPChallenge.
type VerificationData struct {
	Code      string `json:"code"`
	Phone     string `json:"phone"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Attempts  int    `json:"attempts,omitempty"`
}

// ToVerificationData converts the challenge to its persisted form.
func (c *OTPChallenge) ToVerificationData() VerificationData {
	return VerificationData{
		Code:      c.Code,
		Phone:     c.Phone,
		Timestamp: c.IssuedAt.UnixMilli(),
		Attempts:  c.Attempts,
	}
}

// ToChallenge converts persisted data back to a challenge with the given TTL.
func (d VerificationData) ToChallenge(ttl time.Duration) *OTPChallenge {
	return &OTPChallenge{
		Code:     d.Code,
		Phone:    d.Phone,
		IssuedAt: time.UnixMilli(d.Timestamp),
		TTL:      ttl,
		Attempts: d.Attempts,
	}
}

// MFAHint describes the enrolled second factor shown to the user.
type MFAHint struct {
	EnrollmentID string `json:"enrollmentId"`
	PhoneInfo    string `json:"phoneInfo,omitempty"` // masked phone number
	DisplayName  string `json:"displayName,omitempty"`
}

// MFAChallengeState is the transient state of a pending second-factor sign-in.
type MFAChallengeState struct {
	ResolverHandle string    `json:"resolverHandle"` // provider's pending credential
	Hint           MFAHint   `json:"hint"`
	Session        string    `json:"session,omitempty"` // provider session info once the SMS is sent
	ExpiresAt      time.Time `json:"expiresAt"`
}
