package impl

import (
	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/usecase"
)

type routeGuard struct {
	loginPath        string
	unauthorizedPath string
}

// NewRouteGuard is the constructor for routeGuard.
func NewRouteGuard(cfg *config.Config) usecase.RouteGuard {
	return &routeGuard{
		loginPath:        cfg.Redirects.Login,
		unauthorizedPath: cfg.Redirects.Unauthorized,
	}
}

// CanEnter lets authenticated snapshots through when they carry the required
// role, sends anonymous visitors to login and everyone else to unauthorized.
func (g *routeGuard) CanEnter(snapshot *entity.SessionSnapshot, required entity.Role) usecase.Decision {
	if snapshot == nil || !snapshot.IsAuthenticated {
		return usecase.Decision{Redirect: g.loginPath}
	}

	if required != "" && snapshot.Role != required {
		return usecase.Decision{Redirect: g.unauthorizedPath}
	}

	return usecase.Decision{Allow: true}
}
