// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/repository"
	"railmadad/internal/domain/service"
	"railmadad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionReconciler implements the SessionUsecase interface.
type sessionReconciler struct {
	credentials      service.CredentialStore
	resolver         *roleResolver
	otp              usecase.OTPChannel
	snapshots        repository.SnapshotRepository
	challenges       repository.ChallengeRepository
	tokens           service.SessionTokenIssuer
	publisher        service.RoleChangePublisher
	redirects        config.RedirectConfig
	allowAdminSignup bool
	mfaTTL           time.Duration
	now              func() time.Time
	newSessionID     func() string
	logger           *slog.Logger
}

// SessionReconcilerParams holds dependencies for SessionReconciler, injected by Fx.
type SessionReconcilerParams struct {
	fx.In

	Credentials service.CredentialStore
	Backend     service.BackendProfileClient
	Profiles    service.ProfileStore
	OTP         usecase.OTPChannel
	Snapshots   repository.SnapshotRepository
	Challenges  repository.ChallengeRepository
	Tokens      service.SessionTokenIssuer
	Publisher   service.RoleChangePublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSessionReconciler is the constructor for sessionReconciler.
func NewSessionReconciler(params SessionReconcilerParams) usecase.SessionUsecase {
	return newSessionReconciler(params)
}

func newSessionReconciler(params SessionReconcilerParams) *sessionReconciler {
	allowAdminSignup := false
	if params.Config.Auth != nil {
		allowAdminSignup = params.Config.Auth.AllowAdminSignup
	}

	return &sessionReconciler{
		credentials:      params.Credentials,
		resolver:         newRoleResolver(params.Backend, params.Profiles, params.Logger),
		otp:              params.OTP,
		snapshots:        params.Snapshots,
		challenges:       params.Challenges,
		tokens:           params.Tokens,
		publisher:        params.Publisher,
		redirects:        *params.Config.Redirects,
		allowAdminSignup: allowAdminSignup,
		mfaTTL:           params.Config.Session.MFAChallengeTTL,
		now:              time.Now,
		newSessionID:     uuid.NewString,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *sessionReconciler) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SignInEmail authenticates with email and password.
func (s *sessionReconciler) SignInEmail(ctx context.Context, input *usecase.EmailSignInInput) (*usecase.LoginOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	s.log(ctx).Debug("Email sign-in", slog.String("email", input.Email))

	auth, err := s.credentials.SignInEmail(ctx, input.Email, input.Password)
	if err != nil {
		var mfaErr *domainerrors.MFARequiredError
		if errors.As(err, &mfaErr) {
			return s.beginMFA(ctx, input.ClientSessionID, mfaErr.Challenge, input.CaptchaToken)
		}

		return nil, s.failed(ctx, entity.SignInMethodEmail, err)
	}

	return s.completeSignIn(ctx, input.ClientSessionID, auth, entity.SignInMethodEmail, &roleRequest{
		auth:        auth,
		defaultRole: entity.RolePassenger,
	})
}

// SignUpEmail creates the account, sends the verification mail and
// bootstraps both profile stores with the requested role. The session is
// established only if the provider already reports the email as verified.
func (s *sessionReconciler) SignUpEmail(ctx context.Context, input *usecase.SignUpInput) (*usecase.LoginOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	role := s.admitRole(ctx, input.Role)

	auth, err := s.credentials.SignUpEmail(ctx, input.Email, input.Password, input.Profile.Name)
	if err != nil {
		return nil, s.failed(ctx, entity.SignInMethodSignUp, err)
	}

	s.log(ctx).Info("Account created",
		slog.String("uid", auth.Identity.ProviderUserID),
		slog.String("role", role.String()))

	verificationSent := true
	if err := s.credentials.SendEmailVerification(ctx, auth.IDToken); err != nil {
		verificationSent = false
		s.log(ctx).Warn("Failed to send verification email",
			slog.String("uid", auth.Identity.ProviderUserID),
			slog.Any("error", err))
	}

	resolution := s.resolver.resolve(ctx, &roleRequest{
		auth:        auth,
		defaultRole: role,
		details:     input.Profile,
	})

	if !auth.Identity.EmailVerified {
		notices := resolution.notices
		if verificationSent {
			notices = append(notices, domainerrors.InfoNotice(domainerrors.NoticeVerificationSent,
				"Account created. We sent a verification link to "+input.Email+". Please verify before logging in."))
		}

		return &usecase.LoginOutput{
			State:   usecase.StateFailed,
			Notices: notices,
		}, domainerrors.ErrEmailNotVerified
	}

	return s.establish(ctx, input.ClientSessionID, auth, entity.SignInMethodSignUp, resolution)
}

// SignInOAuth completes a Google popup sign-in.
func (s *sessionReconciler) SignInOAuth(ctx context.Context, input *usecase.OAuthSignInInput) (*usecase.LoginOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	auth, err := s.credentials.SignInOAuth(ctx, input.ProviderIDToken)
	if err != nil {
		return nil, s.failed(ctx, entity.SignInMethodGoogle, err)
	}

	return s.completeSignIn(ctx, input.ClientSessionID, auth, entity.SignInMethodGoogle, &roleRequest{
		auth:        auth,
		defaultRole: entity.RolePassenger,
	})
}

// ResolveMFA completes a pending second-factor sign-in.
func (s *sessionReconciler) ResolveMFA(ctx context.Context, input *usecase.MFAResolveInput) (*usecase.LoginOutput, error) {
	state, err := s.challenges.FindMFA(ctx, input.ClientSessionID)
	if err != nil {
		if errors.Is(err, repository.ErrMFAStateNotFound) {
			return nil, domainerrors.ErrMFASessionExpired
		}

		return nil, errors.Wrap(err, "failed to load mfa challenge")
	}

	if !state.ExpiresAt.IsZero() && s.now().After(state.ExpiresAt) {
		s.clearMFA(ctx, input.ClientSessionID)

		return nil, domainerrors.ErrMFASessionExpired
	}

	auth, err := s.credentials.ResolveMFA(ctx, state, input.Code)
	if err != nil {
		if errors.Is(err, domainerrors.ErrMFASessionExpired) {
			s.clearMFA(ctx, input.ClientSessionID)
		}

		return nil, s.failed(ctx, entity.SignInMethodMFA, err)
	}

	s.clearMFA(ctx, input.ClientSessionID)

	return s.completeSignIn(ctx, input.ClientSessionID, auth, entity.SignInMethodMFA, &roleRequest{
		auth:        auth,
		defaultRole: entity.RolePassenger,
	})
}

// IssuePhoneOTP sends a code for the phone fallback path.
func (s *sessionReconciler) IssuePhoneOTP(ctx context.Context, input *usecase.PhoneOTPInput) (*usecase.LoginOutput, error) {
	if !input.TermsAccepted {
		return nil, domainerrors.ErrTermsNotAccepted
	}

	issued, err := s.otp.IssueChallenge(ctx, input.ClientSessionID, input.Phone, input.CaptchaToken)
	if err != nil {
		return nil, s.failed(ctx, entity.SignInMethodPhone, err)
	}

	return &usecase.LoginOutput{
		State: usecase.StateOTPSent,
		OTP: &usecase.OTPPrompt{
			Phone:     issued.Phone,
			ExpiresAt: issued.ExpiresAt,
		},
	}, nil
}

// VerifyPhoneOTP checks the phone code and opens a passenger session. The
// phone path never consults the profile stores.
func (s *sessionReconciler) VerifyPhoneOTP(ctx context.Context, input *usecase.PhoneVerifyInput) (*usecase.LoginOutput, error) {
	challenge, err := s.otp.Verify(ctx, input.ClientSessionID, input.Code)
	if err != nil {
		return nil, s.failed(ctx, entity.SignInMethodPhone, err)
	}

	token, err := s.tokens.IssuePhoneToken(challenge.Phone)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue phone session token")
	}

	snapshot := &entity.SessionSnapshot{
		IsAuthenticated: true,
		Role:            entity.RolePassenger,
		AuthToken:       token,
		Method:          entity.SignInMethodPhone,
		UpdatedAt:       s.now(),
	}
	sessionID, err := s.commit(ctx, input.ClientSessionID, snapshot)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		ClientSessionID: sessionID,
		State:           usecase.StateSessionEstablished,
		Snapshot:        snapshot,
		Redirect:        s.redirects.PassengerDashboard,
	}, nil
}

// SendPasswordReset mails a reset link.
func (s *sessionReconciler) SendPasswordReset(ctx context.Context, input *usecase.PasswordResetInput) (*usecase.LoginOutput, error) {
	if err := s.credentials.SendPasswordReset(ctx, input.Email); err != nil {
		return nil, s.failed(ctx, entity.SignInMethodEmail, err)
	}

	return &usecase.LoginOutput{
		State: usecase.StateAnonymous,
		Notices: []*domainerrors.Notice{
			domainerrors.InfoNotice(domainerrors.NoticePasswordResetSent,
				"Password reset email sent. Please check your inbox."),
		},
	}, nil
}

// Logout drops the snapshot and any pending challenge of the client session.
func (s *sessionReconciler) Logout(ctx context.Context, clientSessionID string) (*usecase.LoginOutput, error) {
	if err := s.snapshots.Delete(ctx, clientSessionID); err != nil {
		return nil, errors.Wrap(err, "failed to delete session snapshot")
	}
	s.clearChallenges(ctx, clientSessionID)

	s.publish(ctx, &entity.RoleChangedEvent{
		ClientSessionID: clientSessionID,
		Authenticated:   false,
	})

	s.log(ctx).Info("Session closed")

	return &usecase.LoginOutput{
		State:    usecase.StateAnonymous,
		Redirect: s.redirects.Login,
	}, nil
}

// CurrentSession returns the stored snapshot of the client session.
func (s *sessionReconciler) CurrentSession(ctx context.Context, clientSessionID string) (*usecase.LoginOutput, error) {
	snapshot, err := s.snapshots.Find(ctx, clientSessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return &usecase.LoginOutput{State: usecase.StateAnonymous}, nil
		}

		return nil, errors.Wrap(err, "failed to load session snapshot")
	}

	if !snapshot.Valid() || !snapshot.IsAuthenticated {
		return &usecase.LoginOutput{State: usecase.StateAnonymous}, nil
	}

	return &usecase.LoginOutput{
		State:    usecase.StateSessionEstablished,
		Snapshot: snapshot,
		Redirect: s.dashboardFor(snapshot.Role),
	}, nil
}

// beginMFA sends the second-factor SMS and parks the challenge state.
func (s *sessionReconciler) beginMFA(ctx context.Context, clientSessionID string, challenge *entity.MFAChallengeState, captchaToken string) (*usecase.LoginOutput, error) {
	started, err := s.credentials.StartMFA(ctx, challenge, captchaToken)
	if err != nil {
		return nil, s.failed(ctx, entity.SignInMethodMFA, err)
	}

	if started.ExpiresAt.IsZero() {
		started.ExpiresAt = s.now().Add(s.mfaTTL)
	}

	if err := s.challenges.SaveMFA(ctx, clientSessionID, started, s.mfaTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store mfa challenge")
	}

	s.log(ctx).Info("Second factor required", slog.String("enrollment_id", started.Hint.EnrollmentID))

	return &usecase.LoginOutput{
		State: usecase.StateMFARequired,
		MFA: &usecase.MFAPrompt{
			Hint:      started.Hint,
			ExpiresAt: started.ExpiresAt,
		},
	}, nil
}

// completeSignIn runs the verification gate and role resolution after the
// identity provider accepted the credentials.
func (s *sessionReconciler) completeSignIn(ctx context.Context, clientSessionID string, auth *entity.AuthResult, method entity.SignInMethod, req *roleRequest) (*usecase.LoginOutput, error) {
	if !auth.Identity.EmailVerified {
		s.log(ctx).Info("Sign-in blocked until email is verified",
			slog.String("uid", auth.Identity.ProviderUserID),
			slog.String("method", string(method)))

		return nil, domainerrors.ErrEmailNotVerified
	}

	resolution := s.resolver.resolve(ctx, req)

	return s.establish(ctx, clientSessionID, auth, method, resolution)
}

// establish writes the snapshot for a resolved role and picks the redirect.
func (s *sessionReconciler) establish(ctx context.Context, clientSessionID string, auth *entity.AuthResult, method entity.SignInMethod, resolution *roleResolution) (*usecase.LoginOutput, error) {
	snapshot := &entity.SessionSnapshot{
		IsAuthenticated: true,
		Role:            resolution.role,
		AuthToken:       auth.IDToken,
		Email:           auth.Identity.Email,
		Method:          method,
		UpdatedAt:       s.now(),
	}

	if resolution.role == entity.RoleAdmin {
		adminToken, err := s.tokens.IssueAdminToken(auth.Identity.ProviderUserID, auth.Identity.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to issue admin token")
		}
		snapshot.AdminToken = adminToken
		snapshot.IsAdminSession = true
	}

	sessionID, err := s.commit(ctx, clientSessionID, snapshot)
	if err != nil {
		return nil, err
	}

	redirect := s.dashboardFor(resolution.role)
	if resolution.firstLogin {
		redirect = s.redirects.ProfileCompletion
	}

	s.log(ctx).Info("Session established",
		slog.String("uid", auth.Identity.ProviderUserID),
		slog.String("role", resolution.role.String()),
		slog.String("method", string(method)),
		slog.Int("notices", len(resolution.notices)))

	return &usecase.LoginOutput{
		ClientSessionID: sessionID,
		State:           usecase.StateSessionEstablished,
		Snapshot:        snapshot,
		Redirect:        redirect,
		Notices:         resolution.notices,
		FirstLogin:      resolution.firstLogin,
	}, nil
}

// commit stores the snapshot under a newly issued client session id and
// retires previousID, so an id known before sign-in never names an
// authenticated session. It returns the new id.
func (s *sessionReconciler) commit(ctx context.Context, previousID string, snapshot *entity.SessionSnapshot) (string, error) {
	if !snapshot.Valid() {
		return "", errors.Errorf("refusing to store invalid snapshot for role %q", snapshot.Role)
	}

	sessionID := s.newSessionID()
	if err := s.snapshots.Save(ctx, sessionID, snapshot); err != nil {
		return "", errors.Wrap(err, "failed to save session snapshot")
	}

	s.retire(ctx, previousID)

	s.publish(ctx, &entity.RoleChangedEvent{
		ClientSessionID: sessionID,
		Role:            snapshot.Role,
		Email:           snapshot.Email,
		Authenticated:   snapshot.IsAuthenticated,
		Method:          snapshot.Method,
	})

	return sessionID, nil
}

// retire drops everything stored under a client session id that was
// replaced. Failures are logged: the new session is already in place.
func (s *sessionReconciler) retire(ctx context.Context, clientSessionID string) {
	if err := s.snapshots.Delete(ctx, clientSessionID); err != nil {
		s.log(ctx).Warn("Failed to delete replaced session snapshot", slog.Any("error", err))
	}
	s.clearChallenges(ctx, clientSessionID)
}

func (s *sessionReconciler) clearChallenges(ctx context.Context, clientSessionID string) {
	if err := s.challenges.DeleteOTP(ctx, clientSessionID); err != nil {
		s.log(ctx).Warn("Failed to clear otp challenge", slog.Any("error", err))
	}
	s.clearMFA(ctx, clientSessionID)
}

func (s *sessionReconciler) publish(ctx context.Context, event *entity.RoleChangedEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = s.now()

	if err := s.publisher.PublishRoleChanged(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish role change", slog.Any("error", err))
	}
}

func (s *sessionReconciler) clearMFA(ctx context.Context, clientSessionID string) {
	if err := s.challenges.DeleteMFA(ctx, clientSessionID); err != nil {
		s.log(ctx).Warn("Failed to clear mfa challenge", slog.Any("error", err))
	}
}

// admitRole decides which role a sign-up may request.
func (s *sessionReconciler) admitRole(ctx context.Context, requested entity.Role) entity.Role {
	role := requested.OrDefault()
	if role == entity.RoleAdmin && !s.allowAdminSignup {
		s.log(ctx).Warn("Admin sign-up requested but disabled, registering as passenger")

		return entity.RolePassenger
	}

	return role
}

func (s *sessionReconciler) dashboardFor(role entity.Role) string {
	if role == entity.RoleAdmin {
		return s.redirects.AdminDashboard
	}

	return s.redirects.PassengerDashboard
}

// failed logs a rejected sign-in attempt and passes the error through.
func (s *sessionReconciler) failed(ctx context.Context, method entity.SignInMethod, err error) error {
	s.log(ctx).Info("Sign-in attempt failed",
		slog.String("method", string(method)),
		slog.String("kind", string(domainerrors.KindOf(err))),
		slog.Any("error", err))

	return err
}
