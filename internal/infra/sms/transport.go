// Package sms delivers OTP text messages through an ordered list of HTTP
// relays.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
)

// statusError is a non-2xx answer from a relay.
type statusError struct {
	backend string
	code    int
	body    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("sms backend %s returned %d: %s", e.backend, e.code, e.body)
}

func isUnauthorized(err error) bool {
	var se *statusError

	return errors.As(err, &se) && se.code == http.StatusUnauthorized
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// transport implements service.SMSTransport.
type transport struct {
	client     *http.Client
	backends   []config.SMSBackend
	newBackoff func() retry.Backoff
	logger     *slog.Logger
}

// NewTransport is the constructor for the SMS transport.
func NewTransport(cfg *config.Config, logger *slog.Logger) (service.SMSTransport, error) {
	if cfg.SMS == nil || len(cfg.SMS.Backends) == 0 {
		return nil, errors.New("at least one sms backend must be configured")
	}

	maxAttempts, base, maxDelay := cfg.SMS.MaxAttempts, cfg.SMS.BaseDelay, cfg.SMS.MaxDelay

	return &transport{
		client:   &http.Client{Timeout: cfg.SMS.Timeout},
		backends: cfg.SMS.Backends,
		newBackoff: func() retry.Backoff {
			return NewBackoff(maxAttempts, base, maxDelay)
		},
		logger: logger,
	}, nil
}

// NewBackoff returns the retry schedule of the primary relay: maxAttempts
// tries in total, waiting base, 2*base, 4*base... capped at maxDelay.
func NewBackoff(maxAttempts int, base, maxDelay time.Duration) retry.Backoff {
	retries := uint64(0)
	if maxAttempts > 1 {
		retries = uint64(maxAttempts - 1)
	}

	b := retry.NewExponential(base)
	b = retry.WithCappedDuration(maxDelay, b)

	return retry.WithMaxRetries(retries, b)
}

func (t *transport) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, t.logger)
}

// Send tries the primary relay with backoff. Only a 401 from the primary
// moves on to the secondary, which gets exactly one attempt.
func (t *transport) Send(ctx context.Context, phone, message string) error {
	primary := t.backends[0]

	attempt := 0
	err := retry.Do(ctx, t.newBackoff(), func(ctx context.Context) error {
		attempt++
		err := t.post(ctx, primary, phone, message)
		if err == nil {
			return nil
		}
		if isUnauthorized(err) {
			return err
		}

		t.log(ctx).Warn("SMS attempt failed",
			slog.String("backend", primary.Name),
			slog.Int("attempt", attempt),
			slog.Any("error", err))

		return retry.RetryableError(err)
	})
	if err == nil {
		return nil
	}

	if isUnauthorized(err) && len(t.backends) > 1 {
		secondary := t.backends[1]
		t.log(ctx).Warn("SMS primary rejected credentials, switching backend",
			slog.String("primary", primary.Name),
			slog.String("secondary", secondary.Name))

		err = t.post(ctx, secondary, phone, message)
		if err == nil {
			return nil
		}
	}

	t.log(ctx).Error("SMS delivery failed", slog.Any("error", err))

	return classify(err)
}

func (t *transport) post(ctx context.Context, backend config.SMSBackend, phone, message string) error {
	body, err := json.Marshal(sendRequest{Phone: phone, Message: message})
	if err != nil {
		return errors.WithStack(err)
	}

	url := strings.TrimRight(backend.BaseURL, "/") + "/sms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	if backend.Token != "" {
		req.Header.Set("Authorization", "Bearer "+backend.Token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "sms backend %s unreachable", backend.Name)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

	return &statusError{backend: backend.Name, code: resp.StatusCode, body: string(snippet)}
}

func classify(err error) error {
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusTooManyRequests {
		return domainerrors.ErrTooManyRequests.WithDetails(se.Error())
	}

	return domainerrors.ErrNetwork.WithDetails(err.Error())
}
