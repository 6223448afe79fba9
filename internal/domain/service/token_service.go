package service

import (
	"railmadad/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Token scopes minted by the gateway.
const (
	TokenScopeAdmin = "admin"
	TokenScopePhone = "phone"
)

// Claims defines the custom claims for tokens minted by the gateway.
type Claims struct {
	Role  entity.Role `json:"role"`
	Email string      `json:"email,omitempty"`
	Phone string      `json:"phone,omitempty"`
	Scope string      `json:"scope"`
	jwt.RegisteredClaims
}

// SessionTokenIssuer mints the tokens the identity provider does not issue:
// the admin-scoped token and the session token of the phone OTP path.
type SessionTokenIssuer interface {
	IssueAdminToken(subject, email string) (string, error)
	IssuePhoneToken(phone string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}
