package usecase

import "railmadad/internal/domain/entity"

// Decision is the outcome of a route guard check.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}

// RouteGuard decides, synchronously and without side effects, whether a
// snapshot may enter a route that requires a role. An empty required role
// only demands authentication.
type RouteGuard interface {
	CanEnter(snapshot *entity.SessionSnapshot, required entity.Role) Decision
}
