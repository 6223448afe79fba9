package entity

import "time"

// SessionSnapshot is the single persisted record of who is logged in, with
// what role and token. JSON keys match the fields the front end mirrors
// into local storage.
type SessionSnapshot struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	Role            Role         `json:"userRole"`
	AuthToken       string       `json:"authToken"`
	AdminToken      string       `json:"adminToken,omitempty"`
	Email           string       `json:"userEmail"`
	IsAdminSession  bool         `json:"isAdminSession"`
	Method          SignInMethod `json:"method,omitempty"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// Valid reports whether the snapshot can be observed by the route guard.
// An authenticated snapshot must always carry a known role.
func (s *SessionSnapshot) Valid() bool {
	if s == nil {
		return false
	}
	if !s.IsAuthenticated {
		return true
	}
	if !s.Role.IsValid() {
		return false
	}

	return s.IsAdminSession == (s.Role == RoleAdmin)
}

// RoleChangedEvent is broadcast after every role write.
type RoleChangedEvent struct {
	ClientSessionID string       `json:"clientSessionId"`
	Role            Role         `json:"role"`
	Email           string       `json:"email,omitempty"`
	Authenticated   bool         `json:"authenticated"`
	Method          SignInMethod `json:"method,omitempty"`
	RequestID       string       `json:"requestId,omitempty"`
	OccurredAt      time.Time    `json:"occurredAt"`
}
