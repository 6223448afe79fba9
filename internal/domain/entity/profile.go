package entity

import "time"

// ProfileRecord is the per-user document kept in the profile store, keyed by
// the identity provider's user id.
type ProfileRecord struct {
	ProviderUserID  string
	Name            string
	Email           string
	Role            Role
	PhoneNumber     string
	Gender          string
	Address         string
	ProfileImageURL string
	CreatedAt       time.Time
}

// BackendProfile is the server-side mirror of the user's role.
type BackendProfile struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Address      string `json:"address,omitempty"`
	UserType     string `json:"user_type"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// Role returns the backend role, defaulting to passenger.
func (p *BackendProfile) Role() Role {
	return ParseRole(p.UserType)
}

// BackendProfileInput is the body of the backend profile create call.
type BackendProfileInput struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Address      string `json:"address,omitempty"`
	UserType     Role   `json:"user_type"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ProfileDetails are the optional fields a sign-up form may carry.
type ProfileDetails struct {
	Name            string
	PhoneNumber     string
	Gender          string
	Address         string
	ProfileImageURL string
}
