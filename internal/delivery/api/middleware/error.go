package middleware

import (
	"log/slog"
	"time"

	"railmadad/config"
	"railmadad/internal/delivery/api/response"
	deliverycontext "railmadad/internal/delivery/context"
	domainerrors "railmadad/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger        *slog.Logger
	noticeDismiss time.Duration
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:        logger,
		noticeDismiss: cfg.Session.NoticeDismiss,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := domainerrors.AsAppError(err); ok {
		if appErr.HTTPCode() >= 500 {
			logger.Error("Request failed", slog.Any("error", err))
		}
		_ = response.AppError(c, appErr, m.noticeDismiss, nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.AppError(c, domainerrors.ErrInternal, m.noticeDismiss, nil)
}
