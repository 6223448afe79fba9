// Package backend talks to the application's own account API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	profilePath       = "/api/accounts/profile/"
	createProfilePath = "/api/accounts/profile/create/"
)

type profileClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewProfileClient is the constructor for the backend profile client.
func NewProfileClient(cfg *config.Config, logger *slog.Logger) (service.BackendProfileClient, error) {
	if cfg.Backend == nil || cfg.Backend.BaseURL == "" {
		return nil, errors.New("backend base url is not configured")
	}

	return &profileClient{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Backend.Timeout},
		logger:  logger,
	}, nil
}

func (c *profileClient) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// FetchProfile loads the profile of the bearer's user.
func (c *profileClient) FetchProfile(ctx context.Context, bearer string) (*entity.BackendProfile, error) {
	var profile entity.BackendProfile
	if err := c.do(ctx, http.MethodGet, profilePath, bearer, nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// CreateProfile registers the bearer's user with the backend.
func (c *profileClient) CreateProfile(ctx context.Context, bearer string, input *entity.BackendProfileInput) (*entity.BackendProfile, error) {
	var profile entity.BackendProfile
	if err := c.do(ctx, http.MethodPost, createProfilePath, bearer, input, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (c *profileClient) do(ctx context.Context, method, path, bearer string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build backend request")
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domainerrors.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domainerrors.ErrBackendProfileNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return errors.Wrapf(domainerrors.ErrBackendUnauthorized, "%s %s", method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log(ctx).Warn("Backend returned unexpected status",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)))

		return domainerrors.ErrNetwork.WithDetails(resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to decode backend response")
	}

	return nil
}
