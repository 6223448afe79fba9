package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/repository"
	"railmadad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Snapshots repository.SnapshotRepository
	Guard     usecase.RouteGuard
	Logger    *slog.Logger
}

// SessionMiddleware loads the snapshot of the client session and enforces
// route roles with the route guard.
type SessionMiddleware struct {
	snapshots repository.SnapshotRepository
	guard     usecase.RouteGuard
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		snapshots: params.Snapshots,
		guard:     params.Guard,
		logger:    params.Logger,
	}
}

// guardRejection is the body of a refused navigation.
type guardRejection struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// RequireRole admits requests whose snapshot carries role. An empty role
// admits any authenticated session.
func (m *SessionMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			var snapshot *entity.SessionSnapshot
			found, err := m.snapshots.Find(ctx, deliverycontext.GetClientSessionID(c))
			switch {
			case err == nil && found.Valid():
				snapshot = found
			case err == nil:
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Ignoring invalid session snapshot")
			case !errors.Is(err, repository.ErrSnapshotNotFound):
				return errors.Wrap(err, "failed to load session snapshot")
			}

			decision := m.guard.CanEnter(snapshot, role)
			if !decision.Allow {
				status := http.StatusForbidden
				code := "UNAUTHORIZED_ROLE"
				if snapshot == nil || !snapshot.IsAuthenticated {
					status = http.StatusUnauthorized
					code = "LOGIN_REQUIRED"
				}

				return c.JSON(status, guardRejection{Error: code, Redirect: decision.Redirect})
			}

			deliverycontext.SetSnapshot(c, snapshot)

			return next(c)
		}
	}
}
