// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const issuer = "railmadad-gateway"

// jwtService is a concrete implementation of the SessionTokenIssuer interface using HS256 JWTs.
type jwtService struct {
	adminSecret   []byte // signs admin-scoped tokens
	sessionSecret []byte // signs phone session tokens
	adminTTL      time.Duration
	phoneTTL      time.Duration
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.SessionTokenIssuer, error) {
	if cfg.SecretKey.Admin == "" || cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		adminSecret:   []byte(cfg.SecretKey.Admin),
		sessionSecret: []byte(cfg.SecretKey.Session),
		adminTTL:      cfg.Auth.AdminTokenTTL,
		phoneTTL:      cfg.Auth.PhoneTokenTTL,
		now:           time.Now,
	}, nil
}

// IssueAdminToken mints the token admin pages present to the backend.
func (s *jwtService) IssueAdminToken(subject, email string) (string, error) {
	return s.sign(&service.Claims{
		Role:  entity.RoleAdmin,
		Email: email,
		Scope: service.TokenScopeAdmin,
	}, subject, s.adminTTL, s.adminSecret)
}

// IssuePhoneToken mints the session token of the phone OTP path, which has
// no identity-provider token of its own.
func (s *jwtService) IssuePhoneToken(phone string) (string, error) {
	return s.sign(&service.Claims{
		Role:  entity.RolePassenger,
		Phone: phone,
		Scope: service.TokenScopePhone,
	}, phone, s.phoneTTL, s.sessionSecret)
}

// ValidateToken checks the signature with the secret of the token's scope.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		switch claims.Scope {
		case service.TokenScopeAdmin:
			return s.adminSecret, nil
		case service.TokenScopePhone:
			return s.sessionSecret, nil
		default:
			return nil, errors.Errorf("unknown token scope %q", claims.Scope)
		}
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *jwtService) sign(claims *service.Claims, subject string, ttl time.Duration, secret []byte) (string, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
