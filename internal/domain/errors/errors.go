package errors

import (
	"net/http"

	"railmadad/internal/domain/entity"

	"github.com/pkg/errors"
)

// Kind classifies a failure of the sign-in flow. Upstream logic branches on
// kinds only, never on provider-specific error shapes.
type Kind string

const (
	KindTermsNotAccepted    Kind = "TERMS_NOT_ACCEPTED"
	KindInvalidCredential   Kind = "INVALID_CREDENTIAL"
	KindEmailNotVerified    Kind = "EMAIL_NOT_VERIFIED"
	KindEmailAlreadyInUse   Kind = "EMAIL_ALREADY_IN_USE"
	KindPopupClosed         Kind = "POPUP_CLOSED"
	KindNetworkError        Kind = "NETWORK_ERROR"
	KindTooManyRequests     Kind = "TOO_MANY_REQUESTS"
	KindInvalidPhoneFormat  Kind = "INVALID_PHONE_FORMAT"
	KindNoActiveChallenge   Kind = "NO_ACTIVE_CHALLENGE"
	KindExpired             Kind = "EXPIRED"
	KindMismatch            Kind = "MISMATCH"
	KindInvalidCode         Kind = "INVALID_CODE"
	KindSessionExpired      Kind = "SESSION_EXPIRED"
	KindCaptchaFailed       Kind = "CAPTCHA_FAILED"
	KindBackendSyncFailed   Kind = "BACKEND_SYNC_FAILED"
	KindProfileCreateFailed Kind = "PROFILE_CREATE_FAILED"
	KindValidationFailed    Kind = "VALIDATION_FAILED"
	KindInternal            Kind = "INTERNAL_ERROR"
)

// Severity tells the front end how to style a message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
	Severity() Severity
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode int
	kind     Kind
	severity Severity
	message  string
	details  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, kind Kind, severity Severity, message, details string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		kind:     kind,
		severity: severity,
		message:  message,
		details:  details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError of the same kind, so errors carrying details still
// compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the failure classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// Severity returns how the failure should be presented
func (e *BaseError) Severity() Severity {
	return e.severity
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode: e.httpCode,
		kind:     e.kind,
		severity: e.severity,
		message:  e.message,
		details:  details,
	}
}

// Fatal failures of the primary identity step.
var (
	ErrTermsNotAccepted = NewBaseError(
		http.StatusBadRequest,
		KindTermsNotAccepted,
		SeverityError,
		"Please accept the terms and conditions to continue.",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		KindInvalidCredential,
		SeverityError,
		"Invalid email or password. Please try again.",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		KindEmailNotVerified,
		SeverityError,
		"Please verify your email before logging in. Check your inbox for the verification link.",
		"",
	)

	ErrEmailAlreadyInUse = NewBaseError(
		http.StatusConflict,
		KindEmailAlreadyInUse,
		SeverityError,
		"An account with this email already exists. Please log in instead.",
		"",
	)

	ErrPopupClosed = NewBaseError(
		http.StatusBadRequest,
		KindPopupClosed,
		SeverityError,
		"Google sign-in was cancelled. Please try again.",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		KindNetworkError,
		SeverityError,
		"Network error. Please check your connection and try again.",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		KindTooManyRequests,
		SeverityError,
		"Too many attempts. Please wait a moment and try again.",
		"",
	)

	ErrInvalidPhoneFormat = NewBaseError(
		http.StatusBadRequest,
		KindInvalidPhoneFormat,
		SeverityError,
		"Please enter a valid phone number with country code, e.g. +919999999999.",
		"",
	)

	ErrNoActiveChallenge = NewBaseError(
		http.StatusBadRequest,
		KindNoActiveChallenge,
		SeverityError,
		"No verification code is pending. Please request a new code.",
		"",
	)

	ErrChallengeExpired = NewBaseError(
		http.StatusGone,
		KindExpired,
		SeverityError,
		"Your verification code has expired. Please request a new one.",
		"",
	)

	ErrCodeMismatch = NewBaseError(
		http.StatusUnauthorized,
		KindMismatch,
		SeverityError,
		"Invalid verification code. Please try again.",
		"",
	)

	ErrInvalidMFACode = NewBaseError(
		http.StatusUnauthorized,
		KindInvalidCode,
		SeverityError,
		"The verification code is incorrect. Please try again.",
		"",
	)

	ErrMFASessionExpired = NewBaseError(
		http.StatusGone,
		KindSessionExpired,
		SeverityError,
		"Your verification session has expired. Please sign in again.",
		"",
	)

	ErrCaptchaFailed = NewBaseError(
		http.StatusBadRequest,
		KindCaptchaFailed,
		SeverityError,
		"reCAPTCHA verification failed. Please try again.",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		KindValidationFailed,
		SeverityError,
		"Please check the highlighted fields and try again.",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		KindInternal,
		SeverityError,
		"Something went wrong. Please try again later.",
		"",
	)
)

// Non-fatal failures of role resolution. The session is still established.
var (
	ErrBackendSyncFailed = NewBaseError(
		http.StatusOK,
		KindBackendSyncFailed,
		SeverityInfo,
		"Signed in, but we could not sync your profile. Some features may be limited.",
		"",
	)

	ErrProfileCreateFailed = NewBaseError(
		http.StatusOK,
		KindProfileCreateFailed,
		SeverityInfo,
		"Signed in, but we could not save your profile. Please complete it later.",
		"",
	)
)

// Adapter-level sentinels of the backend profile client. They never reach
// the user directly: the reconciler turns them into a bootstrap or a notice.
var (
	ErrBackendProfileNotFound = errors.New("backend profile not found")
	ErrBackendUnauthorized    = errors.New("backend rejected bearer token")
)

// MFARequiredError signals that the identity provider needs a second factor
// before it issues tokens.
type MFARequiredError struct {
	Challenge *entity.MFAChallengeState
}

func (e *MFARequiredError) Error() string {
	return "second factor required"
}

// AsAppError extracts the AppError carried by err, if any.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// KindOf returns the kind carried by err, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
