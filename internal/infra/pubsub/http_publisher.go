package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// httpPushPublisher posts events to an endpoint in the Pub/Sub push format,
// so consumers written for push subscriptions can run without Google Cloud.
type httpPushPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewHTTPPushPublisher creates a publisher that pushes to endpoint
func NewHTTPPushPublisher(endpoint string, logger *slog.Logger) service.RoleChangePublisher {
	return &httpPushPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// PublishRoleChanged posts one push message per event
func (p *httpPushPublisher) PublishRoleChanged(ctx context.Context, event *entity.RoleChangedEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/role-changed",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = uuid.NewString()
	pushMsg.Message.PublishTime = event.OccurredAt.UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = eventAttributes(event)

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[HTTPPush] Role change published",
		slog.String("endpoint", p.endpoint),
		slog.String("client_session_id", event.ClientSessionID),
	)

	return nil
}

// Close is a no-op for the HTTP client
func (p *httpPushPublisher) Close() error {
	return nil
}
