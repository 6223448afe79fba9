package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func roleEvent(sessionID string, role entity.Role) *entity.RoleChangedEvent {
	return &entity.RoleChangedEvent{
		ClientSessionID: sessionID,
		Role:            role,
		Authenticated:   true,
		RequestID:       "req-1",
		OccurredAt:      time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestBroadcaster_DeliversOnlyToMatchingSession(t *testing.T) {
	b := NewBroadcaster(testLogger())

	mine, cancelMine := b.Subscribe("session-a")
	defer cancelMine()
	other, cancelOther := b.Subscribe("session-b")
	defer cancelOther()

	require.NoError(t, b.PublishRoleChanged(context.Background(), roleEvent("session-a", entity.RolePassenger)))

	select {
	case got := <-mine:
		assert.Equal(t, entity.RolePassenger, got.Role)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	select {
	case got := <-other:
		t.Fatalf("unexpected event for other session: %+v", got)
	default:
	}
}

func TestBroadcaster_CancelClosesChannel(t *testing.T) {
	b := NewBroadcaster(testLogger())

	ch, cancel := b.Subscribe("session-a")
	assert.Equal(t, 1, b.Subscribers("session-a"))

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.Subscribers("session-a"))
}

func TestBroadcaster_FullBufferDropsEvent(t *testing.T) {
	b := NewBroadcaster(testLogger())

	ch, cancel := b.Subscribe("session-a")
	defer cancel()

	for range subscriberBuffer + 3 {
		require.NoError(t, b.PublishRoleChanged(context.Background(), roleEvent("session-a", entity.RolePassenger)))
	}

	assert.Len(t, ch, subscriberBuffer)
}

func TestBroadcaster_Close(t *testing.T) {
	b := NewBroadcaster(testLogger())

	ch, cancel := b.Subscribe("session-a")
	require.NoError(t, b.Close())

	_, ok := <-ch
	assert.False(t, ok)
	cancel()

	late, _ := b.Subscribe("session-a")
	_, ok = <-late
	assert.False(t, ok)
}

func TestHTTPPushPublisher(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewHTTPPushPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishRoleChanged(context.Background(), roleEvent("session-a", entity.RoleAdmin)))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "session-a", received.Message.Attributes["client_session_id"])
	assert.Equal(t, "admin", received.Message.Attributes["role"])
	assert.Equal(t, "2026-01-02T03:04:05Z", received.Message.PublishTime)
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.RoleChangedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, entity.RoleAdmin, event.Role)
}

func TestHTTPPushPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewHTTPPushPublisher(server.URL, testLogger())
	err := publisher.PublishRoleChanged(context.Background(), roleEvent("session-a", entity.RoleAdmin))
	assert.ErrorContains(t, err, "502")
}

func TestNewRoleChangePublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		chain   int
		wantErr string
	}{
		{name: "not configured", cfg: nil, chain: 1},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local"}, chain: 1},
		{name: "http", cfg: &config.PubSubConfig{Provider: "http", Endpoint: "http://localhost:9/push"}, chain: 2},
		{name: "http without endpoint", cfg: &config.PubSubConfig{Provider: "http"}, wantErr: "endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewRoleChangePublisher(PublisherParams{
				Lc:          lc,
				Config:      &config.Config{PubSub: tt.cfg},
				Logger:      testLogger(),
				Broadcaster: NewBroadcaster(testLogger()),
			})

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			chain, ok := publisher.(*chainPublisher)
			require.True(t, ok)
			assert.Len(t, chain.publishers, tt.chain)

			lc.RequireStart().RequireStop()
		})
	}
}

func TestChainPublisher_ReachesBroadcasterWhenExternalFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	b := NewBroadcaster(testLogger())
	ch, cancel := b.Subscribe("session-a")
	defer cancel()

	chain := &chainPublisher{publishers: []service.RoleChangePublisher{NewHTTPPushPublisher(server.URL, testLogger()), b}}
	err := chain.PublishRoleChanged(context.Background(), roleEvent("session-a", entity.RolePassenger))
	require.Error(t, err)

	got := <-ch
	assert.Equal(t, entity.RolePassenger, got.Role)
}
