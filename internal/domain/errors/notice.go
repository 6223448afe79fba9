package errors

import "time"

// Notice is a user-facing message attached to an auth outcome. Fatal
// failures produce one error notice; non-fatal ones ride along with a
// successful result.
type Notice struct {
	Code           string   `json:"code"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	DismissAfterMs int64    `json:"dismissAfterMs,omitempty"`
	ScrollIntoView bool     `json:"scrollIntoView,omitempty"`
}

// NoticeFrom renders err as a notice. Errors that carry no AppError are shown
// as ErrInternal so provider details never reach the client.
func NoticeFrom(err error, dismissAfter time.Duration) *Notice {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = ErrInternal
	}

	notice := &Notice{
		Code:     appErr.ErrorCode(),
		Severity: appErr.Severity(),
		Message:  appErr.Message(),
	}

	if appErr.Severity() == SeverityError {
		notice.DismissAfterMs = dismissAfter.Milliseconds()
		notice.ScrollIntoView = true
	}

	return notice
}

// NoticeVerificationSent tells a new user to confirm their email.
const NoticeVerificationSent = "VERIFICATION_EMAIL_SENT"

// NoticePasswordResetSent confirms a reset link was mailed.
const NoticePasswordResetSent = "PASSWORD_RESET_SENT"

// InfoNotice builds a notice that does not stem from a failure.
func InfoNotice(code, message string) *Notice {
	return &Notice{
		Code:     code,
		Severity: SeverityInfo,
		Message:  message,
	}
}
