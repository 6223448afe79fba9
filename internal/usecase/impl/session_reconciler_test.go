package impl

import (
	"context"
	"testing"
	"time"

	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/repository"
	"railmadad/internal/infra/persistence/memory"
	mockRepo "railmadad/internal/mocks/repository"
	mockSvc "railmadad/internal/mocks/service"
	"railmadad/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcilerFixture struct {
	s           *sessionReconciler
	otp         *otpFixture
	credentials *mockSvc.MockCredentialStore
	backend     *mockSvc.MockBackendProfileClient
	profiles    *mockSvc.MockProfileStore
	tokens      *mockSvc.MockSessionTokenIssuer
	publisher   *mockSvc.MockRoleChangePublisher
	snapshots   repository.SnapshotRepository
	challenges  repository.ChallengeRepository
	clock       *fakeClock
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()

	otp := newOTPFixture(t)
	f := &reconcilerFixture{
		otp:         otp,
		credentials: mockSvc.NewMockCredentialStore(t),
		backend:     mockSvc.NewMockBackendProfileClient(t),
		profiles:    mockSvc.NewMockProfileStore(t),
		tokens:      mockSvc.NewMockSessionTokenIssuer(t),
		publisher:   mockSvc.NewMockRoleChangePublisher(t),
		snapshots:   memory.NewSnapshotRepository(time.Hour),
		challenges:  otp.challenges,
		clock:       otp.clock,
	}

	f.s = newSessionReconciler(SessionReconcilerParams{
		Credentials: f.credentials,
		Backend:     f.backend,
		Profiles:    f.profiles,
		OTP:         otp.channel,
		Snapshots:   f.snapshots,
		Challenges:  f.challenges,
		Tokens:      f.tokens,
		Publisher:   f.publisher,
		Config:      testConfig(),
		Logger:      discardLogger(),
	})
	f.s.now = f.clock.Now
	f.s.newSessionID = func() string { return "cs-2" }
	f.s.resolver.now = f.clock.Now

	return f
}

// knownUser makes both stores report an existing record with role.
func (f *reconcilerFixture) knownUser(role entity.Role) {
	f.backend.EXPECT().FetchProfile(mock.Anything, "id-token").Return(&entity.BackendProfile{UserType: role.String()}, nil)
	f.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(&entity.ProfileRecord{Role: role}, nil)
}

func (f *reconcilerFixture) expectPublish(role entity.Role, authenticated bool) {
	f.publisher.EXPECT().
		PublishRoleChanged(mock.Anything, mock.MatchedBy(func(e *entity.RoleChangedEvent) bool {
			return e.ClientSessionID == "cs-2" && e.Role == role && e.Authenticated == authenticated
		})).
		Return(nil).Once()
}

func emailInput() *usecase.EmailSignInInput {
	return &usecase.EmailSignInInput{
		ClientSessionID: "cs-1",
		Email:           "asha@example.com",
		Password:        "secret",
		TermsAccepted:   true,
	}
}

func TestSessionReconciler_SignInEmail_RequiresTerms(t *testing.T) {
	f := newReconcilerFixture(t)
	input := emailInput()
	input.TermsAccepted = false

	out, err := f.s.SignInEmail(context.Background(), input)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTermsNotAccepted)
}

func TestSessionReconciler_SignInEmail_UnverifiedIsRejected(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	auth := verifiedAuth()
	auth.Identity.EmailVerified = false
	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(auth, nil)

	_, err := f.s.SignInEmail(ctx, emailInput())
	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)

	_, err = f.snapshots.Find(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSessionReconciler_SignInEmail_Passenger(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	assert.Equal(t, "/passenger/dashboard", out.Redirect)
	assert.False(t, out.FirstLogin)
	assert.Empty(t, out.Notices)

	assert.Equal(t, "cs-2", out.ClientSessionID)

	stored, err := f.snapshots.Find(ctx, "cs-2")
	require.NoError(t, err)
	assert.True(t, stored.IsAuthenticated)
	assert.Equal(t, entity.RolePassenger, stored.Role)
	assert.Equal(t, "id-token", stored.AuthToken)
	assert.Equal(t, "asha@example.com", stored.Email)
	assert.Empty(t, stored.AdminToken)
	assert.False(t, stored.IsAdminSession)
	assert.Equal(t, entity.SignInMethodEmail, stored.Method)
}

func TestSessionReconciler_SignInEmail_RotatesClientSessionID(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	// state planted under the pre-login id must not survive sign-in
	require.NoError(t, f.snapshots.Save(ctx, "cs-1", &entity.SessionSnapshot{}))
	require.NoError(t, f.challenges.SaveOTP(ctx, "cs-1", &entity.OTPChallenge{
		Code:     "123456",
		Phone:    "+919876543210",
		IssuedAt: f.clock.Now(),
		TTL:      30 * time.Minute,
	}))

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	assert.Equal(t, "cs-2", out.ClientSessionID)
	assert.NotEqual(t, emailInput().ClientSessionID, out.ClientSessionID)

	_, err = f.snapshots.Find(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
	_, err = f.challenges.FindOTP(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrChallengeNotFound)

	stored, err := f.snapshots.Find(ctx, "cs-2")
	require.NoError(t, err)
	assert.True(t, stored.IsAuthenticated)
}

// newMockStoreReconciler wires the reconciler to mock repositories.
func newMockStoreReconciler(t *testing.T) (*reconcilerFixture, *mockRepo.MockSnapshotRepository, *mockRepo.MockChallengeRepository) {
	t.Helper()

	f := newReconcilerFixture(t)
	snapshots := mockRepo.NewMockSnapshotRepository(t)
	challenges := mockRepo.NewMockChallengeRepository(t)
	f.s.snapshots = snapshots
	f.s.challenges = challenges

	return f, snapshots, challenges
}

func TestSessionReconciler_SaveFailureKeepsPreviousSession(t *testing.T) {
	f, snapshots, _ := newMockStoreReconciler(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	snapshots.EXPECT().Save(mock.Anything, "cs-2", mock.Anything).Return(errors.New("redis down")).Once()

	out, err := f.s.SignInEmail(ctx, emailInput())

	require.Error(t, err)
	assert.Nil(t, out)
	// no Delete, DeleteOTP or publish expectations: the old id is left untouched
	snapshots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSessionReconciler_RetireFailureIsNotFatal(t *testing.T) {
	f, snapshots, challenges := newMockStoreReconciler(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	snapshots.EXPECT().
		Save(mock.Anything, "cs-2", mock.MatchedBy(func(s *entity.SessionSnapshot) bool {
			return s.IsAuthenticated && s.Role == entity.RolePassenger
		})).
		Return(nil).Once()
	snapshots.EXPECT().Delete(mock.Anything, "cs-1").Return(errors.New("redis down")).Once()
	challenges.EXPECT().DeleteOTP(mock.Anything, "cs-1").Return(errors.New("redis down")).Once()
	challenges.EXPECT().DeleteMFA(mock.Anything, "cs-1").Return(nil).Once()
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	assert.Equal(t, "cs-2", out.ClientSessionID)
}

func TestSessionReconciler_Logout_DeleteFailureIsReported(t *testing.T) {
	f, snapshots, _ := newMockStoreReconciler(t)

	snapshots.EXPECT().Delete(mock.Anything, "cs-2").Return(errors.New("redis down")).Once()

	out, err := f.s.Logout(context.Background(), "cs-2")
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestSessionReconciler_SignInEmail_AdminGetsAdminToken(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RoleAdmin)
	f.tokens.EXPECT().IssueAdminToken("uid-1", "asha@example.com").Return("admin-jwt", nil)
	f.expectPublish(entity.RoleAdmin, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	assert.Equal(t, "/admin/dashboard", out.Redirect)
	assert.Equal(t, "admin-jwt", out.Snapshot.AdminToken)
	assert.True(t, out.Snapshot.IsAdminSession)
}

func TestSessionReconciler_SignInEmail_AdminTokenFailureStoresNothing(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RoleAdmin)
	f.tokens.EXPECT().IssueAdminToken("uid-1", "asha@example.com").Return("", errors.New("no secret"))

	_, err := f.s.SignInEmail(ctx, emailInput())
	require.Error(t, err)

	_, err = f.snapshots.Find(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSessionReconciler_SignInEmail_FirstLoginRedirectsToProfileCompletion(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.backend.EXPECT().FetchProfile(mock.Anything, "id-token").Return(nil, domainerrors.ErrBackendProfileNotFound)
	f.backend.EXPECT().
		CreateProfile(mock.Anything, "id-token", mock.MatchedBy(func(in *entity.BackendProfileInput) bool {
			return in.UserType == entity.RolePassenger
		})).
		Return(&entity.BackendProfile{UserType: "passenger"}, nil).Once()
	f.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(nil, nil)
	f.profiles.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil).Once()
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	assert.True(t, out.FirstLogin)
	assert.Equal(t, "/profile/complete", out.Redirect)
}

func TestSessionReconciler_SignInEmail_BackendDownStillSignsIn(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.backend.EXPECT().FetchProfile(mock.Anything, "id-token").Return(nil, domainerrors.ErrNetwork)
	f.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(&entity.ProfileRecord{Role: entity.RolePassenger}, nil)
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, string(domainerrors.KindBackendSyncFailed), out.Notices[0].Code)
	assert.Equal(t, domainerrors.SeverityInfo, out.Notices[0].Severity)
}

func TestSessionReconciler_SignInEmail_ProviderErrorPassesThrough(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(nil, domainerrors.ErrInvalidCredential)

	_, err := f.s.SignInEmail(ctx, emailInput())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestSessionReconciler_PublishFailureIsNotFatal(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.publisher.EXPECT().PublishRoleChanged(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSessionEstablished, out.State)
}

func signUpInput(role entity.Role) *usecase.SignUpInput {
	return &usecase.SignUpInput{
		ClientSessionID: "cs-1",
		Email:           "asha@example.com",
		Password:        "secret",
		TermsAccepted:   true,
		Role:            role,
		Profile:         entity.ProfileDetails{Name: "Asha Rao", PhoneNumber: "+919876543210"},
	}
}

func TestSessionReconciler_SignUpEmail_UnverifiedBootstrapsAndWaits(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	auth := verifiedAuth()
	auth.Identity.EmailVerified = false
	f.credentials.EXPECT().SignUpEmail(ctx, "asha@example.com", "secret", "Asha Rao").Return(auth, nil)
	f.credentials.EXPECT().SendEmailVerification(ctx, "id-token").Return(nil)
	f.backend.EXPECT().FetchProfile(mock.Anything, "id-token").Return(nil, domainerrors.ErrBackendProfileNotFound)
	f.backend.EXPECT().
		CreateProfile(mock.Anything, "id-token", mock.MatchedBy(func(in *entity.BackendProfileInput) bool {
			return in.UserType == entity.RolePassenger && in.Name == "Asha Rao"
		})).
		Return(&entity.BackendProfile{UserType: "passenger"}, nil).Once()
	f.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(nil, nil)
	f.profiles.EXPECT().
		CreateProfile(mock.Anything, mock.MatchedBy(func(rec *entity.ProfileRecord) bool {
			return rec.Role == entity.RolePassenger && rec.PhoneNumber == "+919876543210"
		})).
		Return(nil).Once()

	// admin self-selection is disabled by default
	out, err := f.s.SignUpEmail(ctx, signUpInput(entity.RoleAdmin))

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	require.NotNil(t, out)
	assert.Equal(t, usecase.StateFailed, out.State)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, domainerrors.NoticeVerificationSent, out.Notices[0].Code)

	_, err = f.snapshots.Find(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound)
}

func TestSessionReconciler_SignUpEmail_VerificationMailFailureIsLogged(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	auth := verifiedAuth()
	auth.Identity.EmailVerified = false
	f.credentials.EXPECT().SignUpEmail(ctx, "asha@example.com", "secret", "Asha Rao").Return(auth, nil)
	f.credentials.EXPECT().SendEmailVerification(ctx, "id-token").Return(domainerrors.ErrTooManyRequests)
	f.knownUser(entity.RolePassenger)

	out, err := f.s.SignUpEmail(ctx, signUpInput(entity.RolePassenger))

	assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	require.NotNil(t, out)
	assert.Empty(t, out.Notices)
}

func TestSessionReconciler_SignUpEmail_AdminWhenAllowed(t *testing.T) {
	f := newReconcilerFixture(t)
	f.s.allowAdminSignup = true
	ctx := context.Background()

	f.credentials.EXPECT().SignUpEmail(ctx, "asha@example.com", "secret", "Asha Rao").Return(verifiedAuth(), nil)
	f.credentials.EXPECT().SendEmailVerification(ctx, "id-token").Return(nil)
	f.backend.EXPECT().FetchProfile(mock.Anything, "id-token").Return(nil, domainerrors.ErrBackendProfileNotFound)
	f.backend.EXPECT().
		CreateProfile(mock.Anything, "id-token", mock.MatchedBy(func(in *entity.BackendProfileInput) bool {
			return in.UserType == entity.RoleAdmin
		})).
		Return(&entity.BackendProfile{UserType: "admin"}, nil).Once()
	f.profiles.EXPECT().GetProfile(mock.Anything, "uid-1").Return(nil, nil)
	f.profiles.EXPECT().CreateProfile(mock.Anything, mock.Anything).Return(nil).Once()
	f.tokens.EXPECT().IssueAdminToken("uid-1", "asha@example.com").Return("admin-jwt", nil)
	f.expectPublish(entity.RoleAdmin, true)

	out, err := f.s.SignUpEmail(ctx, signUpInput(entity.RoleAdmin))
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Snapshot.Role)
	assert.True(t, out.FirstLogin)
	assert.Equal(t, "/profile/complete", out.Redirect)
	assert.Equal(t, entity.SignInMethodSignUp, out.Snapshot.Method)
}

func TestSessionReconciler_SignUpEmail_EmailInUse(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignUpEmail(ctx, "asha@example.com", "secret", "Asha Rao").Return(nil, domainerrors.ErrEmailAlreadyInUse)

	out, err := f.s.SignUpEmail(ctx, signUpInput(entity.RolePassenger))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestSessionReconciler_SignInOAuth(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInOAuth(ctx, "google-id-token").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.SignInOAuth(ctx, &usecase.OAuthSignInInput{
		ClientSessionID: "cs-1",
		ProviderIDToken: "google-id-token",
		TermsAccepted:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SignInMethodGoogle, out.Snapshot.Method)
}

func TestSessionReconciler_SignInOAuth_PopupClosed(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SignInOAuth(ctx, "").Return(nil, domainerrors.ErrPopupClosed)

	_, err := f.s.SignInOAuth(ctx, &usecase.OAuthSignInInput{ClientSessionID: "cs-1", TermsAccepted: true})
	assert.ErrorIs(t, err, domainerrors.ErrPopupClosed)
}

func mfaChallenge() *entity.MFAChallengeState {
	return &entity.MFAChallengeState{
		ResolverHandle: "pending-credential",
		Hint:           entity.MFAHint{EnrollmentID: "enr-1", PhoneInfo: "+*******3210"},
	}
}

func (f *reconcilerFixture) startMFA(t *testing.T) *usecase.LoginOutput {
	t.Helper()

	input := emailInput()
	input.CaptchaToken = "captcha"

	f.credentials.EXPECT().SignInEmail(mock.Anything, "asha@example.com", "secret").
		Return(nil, &domainerrors.MFARequiredError{Challenge: mfaChallenge()})
	f.credentials.EXPECT().StartMFA(mock.Anything, mfaChallenge(), "captcha").
		RunAndReturn(func(_ context.Context, c *entity.MFAChallengeState, _ string) (*entity.MFAChallengeState, error) {
			started := *c
			started.Session = "session-info"

			return &started, nil
		})

	out, err := f.s.SignInEmail(context.Background(), input)
	require.NoError(t, err)

	return out
}

func TestSessionReconciler_MFAFlow(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	out := f.startMFA(t)
	assert.Equal(t, usecase.StateMFARequired, out.State)
	require.NotNil(t, out.MFA)
	assert.Equal(t, "enr-1", out.MFA.Hint.EnrollmentID)
	assert.Equal(t, f.clock.now.Add(5*time.Minute), out.MFA.ExpiresAt)

	f.credentials.EXPECT().
		ResolveMFA(mock.Anything, mock.MatchedBy(func(c *entity.MFAChallengeState) bool {
			return c.Session == "session-info" && c.ResolverHandle == "pending-credential"
		}), "246810").
		Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.expectPublish(entity.RolePassenger, true)

	out, err := f.s.ResolveMFA(ctx, &usecase.MFAResolveInput{ClientSessionID: "cs-1", Code: "246810"})
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	assert.Equal(t, entity.SignInMethodMFA, out.Snapshot.Method)

	_, err = f.challenges.FindMFA(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrMFAStateNotFound)
}

func TestSessionReconciler_ResolveMFA_WrongCodeKeepsState(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()
	f.startMFA(t)

	f.credentials.EXPECT().ResolveMFA(mock.Anything, mock.Anything, "000000").Return(nil, domainerrors.ErrInvalidMFACode)

	_, err := f.s.ResolveMFA(ctx, &usecase.MFAResolveInput{ClientSessionID: "cs-1", Code: "000000"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMFACode)

	_, err = f.challenges.FindMFA(ctx, "cs-1")
	assert.NoError(t, err)
}

func TestSessionReconciler_ResolveMFA_ExpiredState(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()
	f.startMFA(t)

	f.clock.Advance(5*time.Minute + time.Second)

	_, err := f.s.ResolveMFA(ctx, &usecase.MFAResolveInput{ClientSessionID: "cs-1", Code: "246810"})
	assert.ErrorIs(t, err, domainerrors.ErrMFASessionExpired)

	_, err = f.challenges.FindMFA(ctx, "cs-1")
	assert.ErrorIs(t, err, repository.ErrMFAStateNotFound)
}

func TestSessionReconciler_ResolveMFA_NothingPending(t *testing.T) {
	f := newReconcilerFixture(t)

	_, err := f.s.ResolveMFA(context.Background(), &usecase.MFAResolveInput{ClientSessionID: "cs-1", Code: "246810"})
	assert.ErrorIs(t, err, domainerrors.ErrMFASessionExpired)
}

func TestSessionReconciler_PhoneOTP(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.otp.expectIssue("+919876543210")

	out, err := f.s.IssuePhoneOTP(ctx, &usecase.PhoneOTPInput{
		ClientSessionID: "cs-1",
		Phone:           "9876543210",
		TermsAccepted:   true,
		CaptchaToken:    "captcha",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.StateOTPSent, out.State)
	assert.Equal(t, "+919876543210", out.OTP.Phone)

	f.tokens.EXPECT().IssuePhoneToken("+919876543210").Return("phone-jwt", nil)
	f.expectPublish(entity.RolePassenger, true)

	out, err = f.s.VerifyPhoneOTP(ctx, &usecase.PhoneVerifyInput{ClientSessionID: "cs-1", Code: "123456"})
	require.NoError(t, err)

	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	assert.Equal(t, "/passenger/dashboard", out.Redirect)
	assert.Equal(t, entity.RolePassenger, out.Snapshot.Role)
	assert.Equal(t, "phone-jwt", out.Snapshot.AuthToken)
	assert.Equal(t, entity.SignInMethodPhone, out.Snapshot.Method)
}

func TestSessionReconciler_PhoneOTP_RequiresTerms(t *testing.T) {
	f := newReconcilerFixture(t)

	_, err := f.s.IssuePhoneOTP(context.Background(), &usecase.PhoneOTPInput{ClientSessionID: "cs-1", Phone: "9876543210"})
	assert.ErrorIs(t, err, domainerrors.ErrTermsNotAccepted)
}

func TestSessionReconciler_VerifyPhoneOTP_WithoutChallenge(t *testing.T) {
	f := newReconcilerFixture(t)

	_, err := f.s.VerifyPhoneOTP(context.Background(), &usecase.PhoneVerifyInput{ClientSessionID: "cs-1", Code: "123456"})
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveChallenge)
}

func TestSessionReconciler_SendPasswordReset(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	f.credentials.EXPECT().SendPasswordReset(ctx, "asha@example.com").Return(nil)

	out, err := f.s.SendPasswordReset(ctx, &usecase.PasswordResetInput{Email: "asha@example.com"})
	require.NoError(t, err)
	require.Len(t, out.Notices, 1)
	assert.Equal(t, domainerrors.NoticePasswordResetSent, out.Notices[0].Code)
}

func TestSessionReconciler_LogoutAndCurrentSession(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	out, err := f.s.CurrentSession(ctx, "cs-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateAnonymous, out.State)

	f.credentials.EXPECT().SignInEmail(ctx, "asha@example.com", "secret").Return(verifiedAuth(), nil)
	f.knownUser(entity.RolePassenger)
	f.expectPublish(entity.RolePassenger, true)

	_, err = f.s.SignInEmail(ctx, emailInput())
	require.NoError(t, err)

	out, err = f.s.CurrentSession(ctx, "cs-2")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSessionEstablished, out.State)
	assert.Equal(t, "/passenger/dashboard", out.Redirect)

	f.expectPublish("", false)

	out, err = f.s.Logout(ctx, "cs-2")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateAnonymous, out.State)
	assert.Equal(t, "/login", out.Redirect)

	out, err = f.s.CurrentSession(ctx, "cs-2")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateAnonymous, out.State)
	assert.Nil(t, out.Snapshot)
}

func TestSessionReconciler_CurrentSession_IgnoresInvalidSnapshot(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	require.NoError(t, f.snapshots.Save(ctx, "cs-1", &entity.SessionSnapshot{
		IsAuthenticated: true,
		Role:            entity.RoleAdmin,
		IsAdminSession:  false,
	}))

	out, err := f.s.CurrentSession(ctx, "cs-1")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateAnonymous, out.State)
}
