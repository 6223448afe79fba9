// Package handler contains the HTTP handlers of the gateway.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"railmadad/config"
	"railmadad/internal/delivery/api/response"
	deliverycontext "railmadad/internal/delivery/context"
	deliverymiddleware "railmadad/internal/delivery/middleware"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"
	"railmadad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const eventsHeartbeat = 25 * time.Second

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Guard     usecase.RouteGuard
	Feed      service.RoleChangeFeed
	Config    *config.Config
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for sign-in related handlers
type AuthHandler struct {
	sessionUC     usecase.SessionUsecase
	guard         usecase.RouteGuard
	feed          service.RoleChangeFeed
	session       *config.SessionConfig
	noticeDismiss time.Duration
	heartbeat     time.Duration
	logger        *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC:     params.SessionUC,
		guard:         params.Guard,
		feed:          params.Feed,
		session:       params.Config.Session,
		noticeDismiss: params.Config.Session.NoticeDismiss,
		heartbeat:     eventsHeartbeat,
		logger:        params.Logger,
	}
}

// LoginRequest is the email/password login form
type LoginRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	TermsAccepted bool   `json:"termsAccepted"`
	CaptchaToken  string `json:"captchaToken"`
}

// SignUpRequest is the registration form
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	TermsAccepted   bool   `json:"termsAccepted"`
	Role            string `json:"role" validate:"omitempty,oneof=passenger admin"`
	Name            string `json:"name" validate:"max=120"`
	PhoneNumber     string `json:"phoneNumber" validate:"max=20"`
	Gender          string `json:"gender" validate:"max=20"`
	Address         string `json:"address" validate:"max=500"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}

// GoogleSignInRequest carries the ID token returned by the Google popup.
// An empty token means the popup was closed.
type GoogleSignInRequest struct {
	IDToken       string `json:"idToken"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// MFARequest carries the second-factor SMS code
type MFARequest struct {
	Code string `json:"code" validate:"required,numeric,len=6"`
}

// PhoneOTPRequest asks for a phone sign-in code
type PhoneOTPRequest struct {
	Phone         string `json:"phone" validate:"required"`
	TermsAccepted bool   `json:"termsAccepted"`
	CaptchaToken  string `json:"captchaToken"`
}

// PhoneVerifyRequest submits the phone sign-in code
type PhoneVerifyRequest struct {
	Code string `json:"code" validate:"required"`
}

// PasswordResetRequest asks for a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// reply renders out, or err together with out when the call failed. A
// session established by the call lives under a fresh client session id,
// which replaces the cookie.
func (h *AuthHandler) reply(c echo.Context, out *usecase.LoginOutput, err error) error {
	if out != nil {
		deliverymiddleware.BindClientSession(c, h.session, out.ClientSessionID)
	}

	if err != nil {
		var data any
		if out != nil {
			data = out
		}

		return response.HandleAppError(c, err, h.noticeDismiss, data)
	}

	return response.Success(c, http.StatusOK, out)
}

// Login handles email/password sign-in
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.SignInEmail(c.Request().Context(), &usecase.EmailSignInInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		Email:           req.Email,
		Password:        req.Password,
		TermsAccepted:   req.TermsAccepted,
		CaptchaToken:    req.CaptchaToken,
	})

	return h.reply(c, out, err)
}

// SignUp handles account registration
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.SignUpEmail(c.Request().Context(), &usecase.SignUpInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		Email:           req.Email,
		Password:        req.Password,
		TermsAccepted:   req.TermsAccepted,
		Role:            entity.Role(req.Role),
		Profile: entity.ProfileDetails{
			Name:            req.Name,
			PhoneNumber:     req.PhoneNumber,
			Gender:          req.Gender,
			Address:         req.Address,
			ProfileImageURL: req.ProfileImageURL,
		},
	})

	return h.reply(c, out, err)
}

// GoogleSignIn handles the Google popup result
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.SignInOAuth(c.Request().Context(), &usecase.OAuthSignInInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		ProviderIDToken: req.IDToken,
		TermsAccepted:   req.TermsAccepted,
	})

	return h.reply(c, out, err)
}

// ResolveMFA handles the second-factor code
func (h *AuthHandler) ResolveMFA(c echo.Context) error {
	var req MFARequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.ResolveMFA(c.Request().Context(), &usecase.MFAResolveInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		Code:            req.Code,
	})

	return h.reply(c, out, err)
}

// SendPhoneOTP sends a phone sign-in code
func (h *AuthHandler) SendPhoneOTP(c echo.Context) error {
	var req PhoneOTPRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.IssuePhoneOTP(c.Request().Context(), &usecase.PhoneOTPInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		Phone:           req.Phone,
		TermsAccepted:   req.TermsAccepted,
		CaptchaToken:    req.CaptchaToken,
	})

	return h.reply(c, out, err)
}

// VerifyPhoneOTP checks a phone sign-in code
func (h *AuthHandler) VerifyPhoneOTP(c echo.Context) error {
	var req PhoneVerifyRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.VerifyPhoneOTP(c.Request().Context(), &usecase.PhoneVerifyInput{
		ClientSessionID: deliverycontext.GetClientSessionID(c),
		Code:            req.Code,
	})

	return h.reply(c, out, err)
}

// PasswordReset sends a password reset link
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	out, err := h.sessionUC.SendPasswordReset(c.Request().Context(), &usecase.PasswordResetInput{Email: req.Email})

	return h.reply(c, out, err)
}

// Logout closes the session of the client
func (h *AuthHandler) Logout(c echo.Context) error {
	out, err := h.sessionUC.Logout(c.Request().Context(), deliverycontext.GetClientSessionID(c))

	return h.reply(c, out, err)
}

// Session returns the current snapshot of the client
func (h *AuthHandler) Session(c echo.Context) error {
	out, err := h.sessionUC.CurrentSession(c.Request().Context(), deliverycontext.GetClientSessionID(c))

	return h.reply(c, out, err)
}

// Guard answers whether the client may open a route requiring ?role=.
func (h *AuthHandler) Guard(c echo.Context) error {
	required := entity.Role(c.QueryParam("role"))
	if required != "" && !required.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role " + string(required))
	}

	out, err := h.sessionUC.CurrentSession(c.Request().Context(), deliverycontext.GetClientSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err, h.noticeDismiss, nil)
	}

	return response.Success(c, http.StatusOK, h.guard.CanEnter(out.Snapshot, required))
}

// ProtectedSession returns the snapshot loaded by the role check it is
// mounted behind. Admin snapshots carry the admin token.
func (h *AuthHandler) ProtectedSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, deliverycontext.GetSnapshot(c))
}

// Events streams role changes of the client session as server-sent events,
// starting with the current state.
func (h *AuthHandler) Events(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := deliverycontext.GetClientSessionID(c)

	events, cancel := h.feed.Subscribe(sessionID)
	defer cancel()

	current, err := h.sessionUC.CurrentSession(ctx, sessionID)
	if err != nil {
		return response.HandleAppError(c, err, h.noticeDismiss, nil)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	initial := &entity.RoleChangedEvent{ClientSessionID: sessionID}
	if current.Snapshot != nil {
		initial.Role = current.Snapshot.Role
		initial.Email = current.Snapshot.Email
		initial.Authenticated = current.Snapshot.IsAuthenticated
		initial.Method = current.Snapshot.Method
		initial.OccurredAt = current.Snapshot.UpdatedAt
	}
	if err := writeEvent(res, initial); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeEvent(res, event); err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Event stream closed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, event *entity.RoleChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(res, "event: role\ndata: %s\n\n", data); err != nil {
		return err
	}
	res.Flush()

	return nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
