package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "rm_sid",
			TTL:        24 * time.Hour,
		},
	}
}

func runClientSession(t *testing.T, cookie string, handler echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	m := NewClientSessionMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)), sessionConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "rm_sid", Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.Process(handler)(c))

	return rec
}

func TestClientSession_IssuesCookieOnFirstContact(t *testing.T) {
	var seen string
	rec := runClientSession(t, "", func(c echo.Context) error {
		seen = deliverycontext.GetClientSessionID(c)
		assert.Equal(t, seen, c.Request().Context().Value(deliverycontext.KeyClientSessionID))

		return nil
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, seen, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookies[0].MaxAge)
}

func TestClientSession_ReplacesMalformedCookie(t *testing.T) {
	var seen string
	rec := runClientSession(t, "not-a-uuid", func(c echo.Context) error {
		seen = deliverycontext.GetClientSessionID(c)

		return nil
	})

	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestBindClientSession_ReplacesCookieOnRotation(t *testing.T) {
	planted := "11111111-2222-4333-8444-555555555555"
	rotated := uuid.NewString()
	cfg := sessionConfig().Session

	rec := runClientSession(t, planted, func(c echo.Context) error {
		BindClientSession(c, cfg, rotated)
		assert.Equal(t, rotated, deliverycontext.GetClientSessionID(c))

		return nil
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, rotated, cookies[0].Value)
}

func TestBindClientSession_KeepsCookieWithoutNewID(t *testing.T) {
	planted := "11111111-2222-4333-8444-555555555555"
	cfg := sessionConfig().Session

	rec := runClientSession(t, planted, func(c echo.Context) error {
		BindClientSession(c, cfg, "")
		BindClientSession(c, cfg, planted)
		assert.Equal(t, planted, deliverycontext.GetClientSessionID(c))

		return nil
	})

	assert.Empty(t, rec.Result().Cookies())
}
