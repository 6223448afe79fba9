package response

import (
	"net/http"
	"time"

	deliverycontext "railmadad/internal/delivery/context"
	domainerrors "railmadad/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses. Notice is what
// the front end renders; Data carries a partial result when there is one.
type ErrorResponse struct {
	Error  *ErrorInfo           `json:"error"`
	Notice *domainerrors.Notice `json:"notice,omitempty"`
	Data   any                  `json:"data,omitempty"`
	Meta   *MetaInfo            `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return write(c, statusCode, errorCode, message, details, nil, nil)
}

// AppError renders a domain error together with its notice.
func AppError(c echo.Context, appErr domainerrors.AppError, dismissAfter time.Duration, data any) error {
	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return write(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details,
		domainerrors.NoticeFrom(appErr, dismissAfter), data)
}

func write(c echo.Context, statusCode int, errorCode, message string, details any, notice *domainerrors.Notice, data any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Notice: notice,
		Data:   data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors and hands anything else to the
// central error handler. data, when not nil, travels with the error.
func HandleAppError(c echo.Context, err error, dismissAfter time.Duration, data any) error {
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return AppError(c, appErr, dismissAfter, data)
	}

	return errors.WithStack(err)
}
