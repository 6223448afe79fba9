package firebase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	verified bool
	tokenUID string
	getErr   error
}

func (f *fakeDirectory) VerifyIDToken(_ context.Context, _ string) (*auth.Token, error) {
	return &auth.Token{UID: f.tokenUID}, nil
}

func (f *fakeDirectory) GetUser(_ context.Context, uid string) (*auth.UserRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	return &auth.UserRecord{
		UserInfo: &auth.UserInfo{
			UID:         uid,
			Email:       uid + "@example.com",
			DisplayName: "Record Name",
			PhotoURL:    "https://example.com/p.png",
		},
		EmailVerified: f.verified,
	}, nil
}

// toolkit is a fake Identity Toolkit endpoint keyed by path.
type toolkit map[string]func(body map[string]any) (int, any)

func newTestStore(t *testing.T, routes toolkit, users userDirectory) *credentialStore {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		handler, ok := routes[r.URL.Path]
		if !ok {
			t.Errorf("unexpected call to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)

			return
		}

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		status, resp := handler(body)
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{Firebase: &config.FirebaseConfig{
		APIKey:             "test-key",
		IdentityToolkitURL: server.URL,
		RequestTimeout:     time.Second,
	}}

	store, err := newCredentialStore(cfg, users, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return store
}

func providerError(message string) any {
	return map[string]any{"error": map[string]any{"code": 400, "message": message}}
}

func TestCredentialStore_SignInEmail(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signInWithPassword": func(body map[string]any) (int, any) {
			assert.Equal(t, "user@example.com", body["email"])
			assert.Equal(t, true, body["returnSecureToken"])

			return http.StatusOK, map[string]any{
				"localId": "uid-1", "email": "user@example.com", "idToken": "id-token", "refreshToken": "refresh",
			}
		},
	}, &fakeDirectory{verified: true})

	res, err := store.SignInEmail(context.Background(), "user@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "uid-1", res.Identity.ProviderUserID)
	assert.True(t, res.Identity.EmailVerified)
	assert.Equal(t, "Record Name", res.Identity.DisplayName)
	assert.Equal(t, "id-token", res.IDToken)
}

func TestCredentialStore_SignInEmail_MFARequired(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signInWithPassword": func(map[string]any) (int, any) {
			return http.StatusOK, map[string]any{
				"mfaPendingCredential": "pending",
				"mfaInfo": []map[string]any{
					{"mfaEnrollmentId": "enr-1", "phoneInfo": "+91******9999", "displayName": "Work phone"},
				},
			}
		},
	}, &fakeDirectory{})

	_, err := store.SignInEmail(context.Background(), "user@example.com", "secret")

	var mfaErr *domainerrors.MFARequiredError
	require.True(t, errors.As(err, &mfaErr))
	assert.Equal(t, "pending", mfaErr.Challenge.ResolverHandle)
	assert.Equal(t, "enr-1", mfaErr.Challenge.Hint.EnrollmentID)
	assert.Equal(t, "+91******9999", mfaErr.Challenge.Hint.PhoneInfo)
}

func TestCredentialStore_SignInEmail_InvalidCredential(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signInWithPassword": func(map[string]any) (int, any) {
			return http.StatusBadRequest, providerError("INVALID_LOGIN_CREDENTIALS")
		},
	}, &fakeDirectory{})

	_, err := store.SignInEmail(context.Background(), "user@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredential)
}

func TestCredentialStore_SignInEmail_UserLookupFails(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signInWithPassword": func(map[string]any) (int, any) {
			return http.StatusOK, map[string]any{"localId": "uid-1", "idToken": "id-token"}
		},
	}, &fakeDirectory{getErr: errors.New("unavailable")})

	_, err := store.SignInEmail(context.Background(), "user@example.com", "secret")

	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}

func TestCredentialStore_SignUpAndVerify(t *testing.T) {
	var oobBody map[string]any
	store := newTestStore(t, toolkit{
		"/v1/accounts:signUp": func(body map[string]any) (int, any) {
			assert.Equal(t, "Asha", body["displayName"])

			return http.StatusOK, map[string]any{"localId": "uid-2", "email": "new@example.com", "idToken": "id-token"}
		},
		"/v1/accounts:sendOobCode": func(body map[string]any) (int, any) {
			oobBody = body

			return http.StatusOK, map[string]any{"email": "new@example.com"}
		},
	}, &fakeDirectory{verified: false})

	res, err := store.SignUpEmail(context.Background(), "new@example.com", "secret1", "Asha")
	require.NoError(t, err)
	assert.False(t, res.Identity.EmailVerified)

	require.NoError(t, store.SendEmailVerification(context.Background(), res.IDToken))
	assert.Equal(t, "VERIFY_EMAIL", oobBody["requestType"])
	assert.Equal(t, "id-token", oobBody["idToken"])
}

func TestCredentialStore_SignUp_EmailExists(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signUp": func(map[string]any) (int, any) {
			return http.StatusBadRequest, providerError("EMAIL_EXISTS")
		},
	}, &fakeDirectory{})

	_, err := store.SignUpEmail(context.Background(), "taken@example.com", "secret1", "")

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyInUse)
}

func TestCredentialStore_SignInOAuth(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v1/accounts:signInWithIdp": func(body map[string]any) (int, any) {
			assert.Contains(t, body["postBody"], "providerId=google.com")
			assert.Contains(t, body["postBody"], "id_token=google-token")

			return http.StatusOK, map[string]any{"localId": "uid-3", "idToken": "id-token"}
		},
	}, &fakeDirectory{verified: true})

	res, err := store.SignInOAuth(context.Background(), "google-token")

	require.NoError(t, err)
	assert.Equal(t, "uid-3@example.com", res.Identity.Email)
	assert.Equal(t, "https://example.com/p.png", res.Identity.PhotoURL)
}

func TestCredentialStore_SignInOAuth_PopupClosed(t *testing.T) {
	store := newTestStore(t, toolkit{}, &fakeDirectory{})

	_, err := store.SignInOAuth(context.Background(), "")

	assert.ErrorIs(t, err, domainerrors.ErrPopupClosed)
}

func TestCredentialStore_MFARoundTrip(t *testing.T) {
	store := newTestStore(t, toolkit{
		"/v2/accounts/mfaSignIn:start": func(body map[string]any) (int, any) {
			assert.Equal(t, "pending", body["mfaPendingCredential"])
			assert.Equal(t, "enr-1", body["mfaEnrollmentId"])

			return http.StatusOK, map[string]any{"phoneResponseInfo": map[string]any{"sessionInfo": "session-info"}}
		},
		"/v2/accounts/mfaSignIn:finalize": func(body map[string]any) (int, any) {
			info := body["phoneVerificationInfo"].(map[string]any)
			if info["code"] != "123456" {
				return http.StatusBadRequest, providerError("INVALID_CODE")
			}

			return http.StatusOK, map[string]any{"idToken": "id-token", "refreshToken": "refresh"}
		},
	}, &fakeDirectory{verified: true, tokenUID: "uid-4"})

	challenge := &entity.MFAChallengeState{
		ResolverHandle: "pending",
		Hint:           entity.MFAHint{EnrollmentID: "enr-1"},
	}

	started, err := store.StartMFA(context.Background(), challenge, "captcha")
	require.NoError(t, err)
	assert.Equal(t, "session-info", started.Session)
	assert.Empty(t, challenge.Session)

	_, err = store.ResolveMFA(context.Background(), started, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMFACode)

	res, err := store.ResolveMFA(context.Background(), started, "123456")
	require.NoError(t, err)
	assert.Equal(t, "uid-4", res.Identity.ProviderUserID)
}

func TestCredentialStore_ResolveMFA_WithoutSession(t *testing.T) {
	store := newTestStore(t, toolkit{}, &fakeDirectory{})

	_, err := store.ResolveMFA(context.Background(), &entity.MFAChallengeState{ResolverHandle: "pending"}, "123456")

	assert.ErrorIs(t, err, domainerrors.ErrMFASessionExpired)
}

func TestCredentialStore_Unreachable(t *testing.T) {
	cfg := &config.Config{Firebase: &config.FirebaseConfig{
		APIKey:             "test-key",
		IdentityToolkitURL: "http://127.0.0.1:1",
		RequestTimeout:     time.Second,
	}}
	store, err := newCredentialStore(cfg, &fakeDirectory{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	err = store.SendPasswordReset(context.Background(), "user@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
}
