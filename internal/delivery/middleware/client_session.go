package middleware

import (
	"log/slog"
	"net/http"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientSessionMiddleware binds every request to a browser session id kept
// in an HttpOnly cookie, creating one on first contact. The id only names
// anonymous state until a sign-in rotates it (see BindClientSession).
type ClientSessionMiddleware struct {
	logger *slog.Logger
	cfg    *config.SessionConfig
}

// NewClientSessionMiddleware creates a new client session middleware
func NewClientSessionMiddleware(logger *slog.Logger, cfg *config.Config) *ClientSessionMiddleware {
	return &ClientSessionMiddleware{
		logger: logger,
		cfg:    cfg.Session,
	}
}

// Process resolves the client session id and adds it to the request logger.
func (m *ClientSessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sessionID string
		if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
			if _, err := uuid.Parse(cookie.Value); err == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie(m.cfg, sessionID))
		}

		deliverycontext.SetClientSessionID(c, sessionID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).
			With(slog.String("client_session", sessionID[:8]))
		ctx = deliverycontext.WithClientSessionID(ctx, sessionID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SessionCookie builds the client session cookie for id.
func SessionCookie(cfg *config.SessionConfig, id string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// BindClientSession moves the response onto a newly issued client session
// id: the cookie is replaced and later reads of the echo.Context see id.
func BindClientSession(c echo.Context, cfg *config.SessionConfig, id string) {
	if id == "" || id == deliverycontext.GetClientSessionID(c) {
		return
	}

	c.SetCookie(SessionCookie(cfg, id))
	deliverycontext.SetClientSessionID(c, id)
}
