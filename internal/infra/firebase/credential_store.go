package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

const (
	defaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com"
	googleProviderID          = "google.com"
	oobVerifyEmail            = "VERIFY_EMAIL"
	oobPasswordReset          = "PASSWORD_RESET"
)

// userDirectory is the part of the Admin SDK auth client we rely on.
type userDirectory interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

type credentialStore struct {
	baseURL    string
	apiKey     string
	requestURI string
	client     *http.Client
	users      userDirectory
	logger     *slog.Logger
}

// NewCredentialStore is the constructor for the Identity Toolkit backed
// credential store.
func NewCredentialStore(cfg *config.Config, users *auth.Client, logger *slog.Logger) (service.CredentialStore, error) {
	return newCredentialStore(cfg, users, logger)
}

func newCredentialStore(cfg *config.Config, users userDirectory, logger *slog.Logger) (*credentialStore, error) {
	if cfg.Firebase == nil || cfg.Firebase.APIKey == "" {
		return nil, errors.New("firebase api key is not configured")
	}

	baseURL := cfg.Firebase.IdentityToolkitURL
	if baseURL == "" {
		baseURL = defaultIdentityToolkitURL
	}

	requestURI := "http://localhost"
	if len(cfg.HTTP.AllowOrigins) > 0 {
		requestURI = cfg.HTTP.AllowOrigins[0]
	}

	return &credentialStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.Firebase.APIKey,
		requestURI: requestURI,
		client:     &http.Client{Timeout: cfg.Firebase.RequestTimeout},
		users:      users,
		logger:     logger,
	}, nil
}

func (s *credentialStore) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

type mfaEnrollment struct {
	MFAEnrollmentID string `json:"mfaEnrollmentId"`
	DisplayName     string `json:"displayName"`
	PhoneInfo       string `json:"phoneInfo"`
}

// signInResponse covers the fields shared by signInWithPassword, signUp,
// signInWithIdp and mfaSignIn:finalize.
type signInResponse struct {
	LocalID              string          `json:"localId"`
	Email                string          `json:"email"`
	DisplayName          string          `json:"displayName"`
	IDToken              string          `json:"idToken"`
	RefreshToken         string          `json:"refreshToken"`
	MFAPendingCredential string          `json:"mfaPendingCredential"`
	MFAInfo              []mfaEnrollment `json:"mfaInfo"`
}

// SignInEmail authenticates an email/password pair.
func (s *credentialStore) SignInEmail(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	var resp signInResponse
	err := s.call(ctx, "/v1/accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return s.authResult(ctx, &resp)
}

// SignUpEmail creates a provider account and signs it in.
func (s *credentialStore) SignUpEmail(ctx context.Context, email, password, displayName string) (*entity.AuthResult, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	if displayName != "" {
		body["displayName"] = displayName
	}

	var resp signInResponse
	if err := s.call(ctx, "/v1/accounts:signUp", body, &resp); err != nil {
		return nil, err
	}

	return s.authResult(ctx, &resp)
}

// SendEmailVerification mails a verification link to the signed-in user.
func (s *credentialStore) SendEmailVerification(ctx context.Context, idToken string) error {
	return s.call(ctx, "/v1/accounts:sendOobCode", map[string]any{
		"requestType": oobVerifyEmail,
		"idToken":     idToken,
	}, nil)
}

// SignInOAuth exchanges a Google ID token for a provider session.
func (s *credentialStore) SignInOAuth(ctx context.Context, providerIDToken string) (*entity.AuthResult, error) {
	if providerIDToken == "" {
		return nil, domainerrors.ErrPopupClosed
	}

	postBody := url.Values{}
	postBody.Set("id_token", providerIDToken)
	postBody.Set("providerId", googleProviderID)

	var resp signInResponse
	err := s.call(ctx, "/v1/accounts:signInWithIdp", map[string]any{
		"postBody":            postBody.Encode(),
		"requestUri":          s.requestURI,
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return s.authResult(ctx, &resp)
}

// SendPasswordReset mails a password reset link.
func (s *credentialStore) SendPasswordReset(ctx context.Context, email string) error {
	return s.call(ctx, "/v1/accounts:sendOobCode", map[string]any{
		"requestType": oobPasswordReset,
		"email":       email,
	}, nil)
}

// StartMFA sends the SMS code of the enrolled phone factor.
func (s *credentialStore) StartMFA(ctx context.Context, challenge *entity.MFAChallengeState, captchaToken string) (*entity.MFAChallengeState, error) {
	var resp struct {
		PhoneResponseInfo struct {
			SessionInfo string `json:"sessionInfo"`
		} `json:"phoneResponseInfo"`
	}

	body := map[string]any{
		"mfaPendingCredential": challenge.ResolverHandle,
		"mfaEnrollmentId":      challenge.Hint.EnrollmentID,
		"phoneSignInInfo": map[string]any{
			"recaptchaToken": captchaToken,
		},
	}
	if err := s.call(ctx, "/v2/accounts/mfaSignIn:start", body, &resp); err != nil {
		return nil, err
	}

	started := *challenge
	started.Session = resp.PhoneResponseInfo.SessionInfo

	return &started, nil
}

// ResolveMFA finalizes the second-factor sign-in.
func (s *credentialStore) ResolveMFA(ctx context.Context, challenge *entity.MFAChallengeState, code string) (*entity.AuthResult, error) {
	if challenge.Session == "" {
		return nil, domainerrors.ErrMFASessionExpired
	}

	var resp signInResponse
	err := s.call(ctx, "/v2/accounts/mfaSignIn:finalize", map[string]any{
		"mfaPendingCredential": challenge.ResolverHandle,
		"phoneVerificationInfo": map[string]any{
			"sessionInfo": challenge.Session,
			"code":        code,
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return s.authResult(ctx, &resp)
}

// authResult turns a sign-in response into an AuthResult, or into an
// MFARequiredError when the provider asks for a second factor. The user
// record is read through the Admin SDK, which is the only source of the
// email verification flag for every sign-in method.
func (s *credentialStore) authResult(ctx context.Context, resp *signInResponse) (*entity.AuthResult, error) {
	if resp.MFAPendingCredential != "" {
		state := &entity.MFAChallengeState{ResolverHandle: resp.MFAPendingCredential}
		if len(resp.MFAInfo) > 0 {
			state.Hint = entity.MFAHint{
				EnrollmentID: resp.MFAInfo[0].MFAEnrollmentID,
				PhoneInfo:    resp.MFAInfo[0].PhoneInfo,
				DisplayName:  resp.MFAInfo[0].DisplayName,
			}
		}

		return nil, &domainerrors.MFARequiredError{Challenge: state}
	}

	uid := resp.LocalID
	if uid == "" {
		token, err := s.users.VerifyIDToken(ctx, resp.IDToken)
		if err != nil {
			return nil, errors.Wrap(err, "failed to verify provider id token")
		}
		uid = token.UID
	}

	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		s.log(ctx).Warn("Failed to read provider user record", slog.String("uid", uid), slog.Any("error", err))

		return nil, domainerrors.ErrNetwork.WithDetails(err.Error())
	}

	identity := entity.Identity{
		ProviderUserID: uid,
		Email:          resp.Email,
		EmailVerified:  user.EmailVerified,
		DisplayName:    resp.DisplayName,
	}
	if user.UserInfo != nil {
		identity.Email = firstNonEmpty(user.Email, identity.Email)
		identity.DisplayName = firstNonEmpty(user.DisplayName, identity.DisplayName)
		identity.PhotoURL = user.PhotoURL
	}

	return &entity.AuthResult{
		Identity:     identity,
		IDToken:      resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// call POSTs body to an Identity Toolkit endpoint and decodes the answer
// into out when out is not nil.
func (s *credentialStore) call(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	reqURL := s.baseURL + endpoint + "?key=" + url.QueryEscape(s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "failed to build identity toolkit request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domainerrors.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorBody
		if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&apiErr); err != nil {
			return mapProviderError(resp.StatusCode, resp.Status)
		}

		s.log(ctx).Debug("Identity provider rejected request",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("code", providerCode(apiErr.Error.Message)))

		return mapProviderError(resp.StatusCode, apiErr.Error.Message)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode identity toolkit response")
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
