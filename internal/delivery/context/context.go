// Package context carries per-request values of the gateway: the request
// id, the request-scoped logger, the browser's client session id and the
// snapshot loaded for role-guarded routes. Values live both on echo.Context
// for handlers and on context.Context for the layers below.
package context

import (
	"context"
	"log/slog"

	"railmadad/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID       ContextKey = "request_id"
	KeyLogger          ContextKey = "logger"
	KeyClientSessionID ContextKey = "client_session_id"
	KeySnapshot        ContextKey = "session_snapshot"

	// HeaderXRequestID is echoed on every response.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware, or ""
// outside of a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext is GetRequestID for the use case and infra
// layers, which only see context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request logger (tagged with request id and
// client session) or fallback when ctx did not pass through the middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetClientSessionID returns the id of the browser session the request
// belongs to. After a sign-in it is the rotated id.
func GetClientSessionID(c echo.Context) string {
	id, _ := c.Get(string(KeyClientSessionID)).(string)

	return id
}

func SetClientSessionID(c echo.Context, id string) {
	c.Set(string(KeyClientSessionID), id)
}

func WithClientSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, KeyClientSessionID, id)
}

// GetSnapshot returns the snapshot the role check loaded, or nil.
func GetSnapshot(c echo.Context) *entity.SessionSnapshot {
	snapshot, _ := c.Get(string(KeySnapshot)).(*entity.SessionSnapshot)

	return snapshot
}

func SetSnapshot(c echo.Context, snapshot *entity.SessionSnapshot) {
	c.Set(string(KeySnapshot), snapshot)
}
