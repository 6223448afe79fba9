package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"railmadad/config"
	domainerrors "railmadad/internal/domain/errors"

	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relay struct {
	server *httptest.Server
	hits   atomic.Int32
}

func newRelay(t *testing.T, status func(hit int32) int) *relay {
	t.Helper()

	r := &relay{}
	r.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hit := r.hits.Add(1)
		assert.Equal(t, "/sms", req.URL.Path)
		assert.Equal(t, http.MethodPost, req.Method)

		var body sendRequest
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "+919999999999", body.Phone)

		w.WriteHeader(status(hit))
	}))
	t.Cleanup(r.server.Close)

	return r
}

// recordingBackoff keeps the real schedule but does not sleep.
type recordingBackoff struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *recordingBackoff) wrap(next retry.Backoff) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		d, stop := next.Next()
		if stop {
			return 0, true
		}
		r.mu.Lock()
		r.delays = append(r.delays, d)
		r.mu.Unlock()

		return time.Millisecond, false
	})
}

func newTestTransport(t *testing.T, rec *recordingBackoff, relays ...*relay) *transport {
	t.Helper()

	cfg := &config.Config{SMS: &config.SMSConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
		Timeout:     time.Second,
	}}
	for i, r := range relays {
		cfg.SMS.Backends = append(cfg.SMS.Backends, config.SMSBackend{
			Name:    []string{"local", "cloud"}[i],
			BaseURL: r.server.URL,
			Token:   "token",
		})
	}

	svc, err := NewTransport(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	tr := svc.(*transport)
	tr.newBackoff = func() retry.Backoff {
		return rec.wrap(NewBackoff(cfg.SMS.MaxAttempts, cfg.SMS.BaseDelay, cfg.SMS.MaxDelay))
	}

	return tr
}

func TestTransport_Send_PrimarySucceeds(t *testing.T) {
	primary := newRelay(t, func(int32) int { return http.StatusOK })
	secondary := newRelay(t, func(int32) int { return http.StatusOK })
	rec := &recordingBackoff{}

	err := newTestTransport(t, rec, primary, secondary).Send(context.Background(), "+919999999999", "code 123456")

	require.NoError(t, err)
	assert.EqualValues(t, 1, primary.hits.Load())
	assert.EqualValues(t, 0, secondary.hits.Load())
	assert.Empty(t, rec.delays)
}

func TestTransport_Send_UnauthorizedSwitchesOnce(t *testing.T) {
	primary := newRelay(t, func(int32) int { return http.StatusUnauthorized })
	secondary := newRelay(t, func(int32) int { return http.StatusInternalServerError })
	rec := &recordingBackoff{}

	err := newTestTransport(t, rec, primary, secondary).Send(context.Background(), "+919999999999", "code")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.EqualValues(t, 1, primary.hits.Load())
	assert.EqualValues(t, 1, secondary.hits.Load())
	assert.Empty(t, rec.delays)
}

func TestTransport_Send_UnauthorizedSecondarySucceeds(t *testing.T) {
	primary := newRelay(t, func(int32) int { return http.StatusUnauthorized })
	secondary := newRelay(t, func(int32) int { return http.StatusOK })

	err := newTestTransport(t, &recordingBackoff{}, primary, secondary).Send(context.Background(), "+919999999999", "code")

	require.NoError(t, err)
	assert.EqualValues(t, 1, secondary.hits.Load())
}

func TestTransport_Send_ServerErrorRetriesSameBackend(t *testing.T) {
	primary := newRelay(t, func(int32) int { return http.StatusServiceUnavailable })
	secondary := newRelay(t, func(int32) int { return http.StatusOK })
	rec := &recordingBackoff{}

	err := newTestTransport(t, rec, primary, secondary).Send(context.Background(), "+919999999999", "code")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.EqualValues(t, 3, primary.hits.Load())
	assert.EqualValues(t, 0, secondary.hits.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.delays)
}

func TestTransport_Send_RecoversOnRetry(t *testing.T) {
	primary := newRelay(t, func(hit int32) int {
		if hit < 3 {
			return http.StatusBadGateway
		}

		return http.StatusOK
	})
	rec := &recordingBackoff{}

	err := newTestTransport(t, rec, primary).Send(context.Background(), "+919999999999", "code")

	require.NoError(t, err)
	assert.EqualValues(t, 3, primary.hits.Load())
}

func TestTransport_Send_TooManyRequests(t *testing.T) {
	primary := newRelay(t, func(int32) int { return http.StatusTooManyRequests })

	err := newTestTransport(t, &recordingBackoff{}, primary).Send(context.Background(), "+919999999999", "code")

	assert.ErrorIs(t, err, domainerrors.ErrTooManyRequests)
	assert.EqualValues(t, 3, primary.hits.Load())
}

func TestNewBackoff_DoublesAndCaps(t *testing.T) {
	b := NewBackoff(8, time.Second, 10*time.Second)

	var delays []time.Duration
	for {
		d, stop := b.Next()
		if stop {
			break
		}
		delays = append(delays, d)
	}

	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
		10 * time.Second, 10 * time.Second, 10 * time.Second,
	}, delays)
}

func TestNewTransport_RequiresBackend(t *testing.T) {
	_, err := NewTransport(&config.Config{SMS: &config.SMSConfig{}}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
