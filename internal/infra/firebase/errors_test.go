package firebase

import (
	"net/http"
	"testing"

	domainerrors "railmadad/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestMapProviderError(t *testing.T) {
	tests := []struct {
		message string
		status  int
		want    domainerrors.Kind
	}{
		{message: "INVALID_PASSWORD", status: 400, want: domainerrors.KindInvalidCredential},
		{message: "EMAIL_NOT_FOUND", status: 400, want: domainerrors.KindInvalidCredential},
		{message: "EMAIL_EXISTS", status: 400, want: domainerrors.KindEmailAlreadyInUse},
		{message: "WEAK_PASSWORD : Password should be at least 6 characters", status: 400, want: domainerrors.KindValidationFailed},
		{message: "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled", status: 400, want: domainerrors.KindTooManyRequests},
		{message: "INVALID_CODE", status: 400, want: domainerrors.KindInvalidCode},
		{message: "SESSION_EXPIRED", status: 400, want: domainerrors.KindSessionExpired},
		{message: "INVALID_MFA_PENDING_CREDENTIAL", status: 400, want: domainerrors.KindSessionExpired},
		{message: "CAPTCHA_CHECK_FAILED", status: 400, want: domainerrors.KindCaptchaFailed},
		{message: "BACKEND_ERROR", status: http.StatusServiceUnavailable, want: domainerrors.KindNetworkError},
		{message: "SOMETHING_NEW", status: 400, want: domainerrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			err := mapProviderError(tt.status, tt.message)

			assert.Equal(t, tt.want, domainerrors.KindOf(err))
		})
	}
}
