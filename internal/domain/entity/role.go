// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RolePassenger indicates a railway passenger filing or tracking grievances.
	RolePassenger Role = "passenger"
	// RoleAdmin indicates a staff member handling grievances.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePassenger, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole reads a stored role value. Legacy records without a role, or
// with a value we do not know, are passengers.
func ParseRole(s string) Role {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	if role.IsValid() {
		return role
	}

	return RolePassenger
}

// OrDefault returns r when valid and passenger otherwise.
func (r Role) OrDefault() Role {
	if r.IsValid() {
		return r
	}

	return RolePassenger
}
