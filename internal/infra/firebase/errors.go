package firebase

import (
	"net/http"
	"strings"

	domainerrors "railmadad/internal/domain/errors"
)

// apiErrorBody is the error envelope of the Identity Toolkit REST API.
type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// providerCode extracts the symbolic code from messages such as
// "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been disabled".
func providerCode(message string) string {
	code, _, _ := strings.Cut(message, " ")

	return strings.TrimSpace(code)
}

// mapProviderError translates an Identity Toolkit failure onto the domain
// error kinds. This is the only place provider codes are interpreted.
func mapProviderError(status int, message string) error {
	code := providerCode(message)

	switch code {
	case "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS", "INVALID_EMAIL",
		"USER_DISABLED", "MISSING_PASSWORD", "INVALID_IDP_RESPONSE", "INVALID_ID_TOKEN",
		"USER_NOT_FOUND", "TOKEN_EXPIRED", "CREDENTIAL_TOO_OLD_LOGIN_AGAIN":
		return domainerrors.ErrInvalidCredential.WithDetails(code)
	case "EMAIL_EXISTS":
		return domainerrors.ErrEmailAlreadyInUse
	case "WEAK_PASSWORD":
		return domainerrors.ErrValidationFailed.WithDetails("password should be at least 6 characters")
	case "TOO_MANY_ATTEMPTS_TRY_LATER", "QUOTA_EXCEEDED", "RESET_PASSWORD_EXCEED_LIMIT":
		return domainerrors.ErrTooManyRequests
	case "INVALID_CODE", "MISSING_CODE", "INVALID_VERIFICATION_CODE":
		return domainerrors.ErrInvalidMFACode
	case "SESSION_EXPIRED", "INVALID_SESSION_INFO", "MISSING_SESSION_INFO",
		"INVALID_MFA_PENDING_CREDENTIAL", "MISSING_MFA_PENDING_CREDENTIAL":
		return domainerrors.ErrMFASessionExpired
	case "CAPTCHA_CHECK_FAILED", "MISSING_RECAPTCHA_TOKEN", "INVALID_RECAPTCHA_TOKEN":
		return domainerrors.ErrCaptchaFailed
	}

	if status >= http.StatusInternalServerError {
		return domainerrors.ErrNetwork.WithDetails(message)
	}

	return domainerrors.ErrInternal.WithDetails(message)
}
