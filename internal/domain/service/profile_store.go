package service

import (
	"context"

	"railmadad/internal/domain/entity"
)

// ProfileStore is the document store holding one profile per identity.
type ProfileStore interface {
	// GetProfile returns (nil, nil) when no profile exists for uid.
	GetProfile(ctx context.Context, uid string) (*entity.ProfileRecord, error)

	// CreateProfile writes a new profile. It fails if one already exists.
	CreateProfile(ctx context.Context, rec *entity.ProfileRecord) error
}

// BackendProfileClient talks to the application backend's account API using
// the provider-issued bearer token.
type BackendProfileClient interface {
	// FetchProfile returns errors.ErrBackendProfileNotFound when the backend
	// has no profile for the token's user.
	FetchProfile(ctx context.Context, bearer string) (*entity.BackendProfile, error)

	CreateProfile(ctx context.Context, bearer string, input *entity.BackendProfileInput) (*entity.BackendProfile, error)
}
