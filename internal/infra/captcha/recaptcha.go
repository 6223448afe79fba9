// Package captcha verifies bot-protection tokens before an SMS is sent.
package captcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	verifyTimeout    = 5 * time.Second
)

// leases tracks tokens that are currently held. A token cannot be acquired
// again until its lease is released.
type leases struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newLeases() *leases {
	return &leases{inFlight: make(map[string]struct{})}
}

func (l *leases) take(token string) (*lease, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.inFlight[token]; held {
		return nil, false
	}
	l.inFlight[token] = struct{}{}

	return &lease{owner: l, token: token}, true
}

func (l *leases) active() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.inFlight)
}

type lease struct {
	once  sync.Once
	owner *leases
	token string
}

// Release is idempotent.
func (l *lease) Release() {
	l.once.Do(func() {
		l.owner.mu.Lock()
		delete(l.owner.inFlight, l.token)
		l.owner.mu.Unlock()
	})
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Score      *float64 `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// RecaptchaVerifier checks tokens against the reCAPTCHA siteverify API.
type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	minScore  float64
	client    *http.Client
	leases    *leases
	logger    *slog.Logger
}

// NewRecaptchaVerifier is the constructor for RecaptchaVerifier.
func NewRecaptchaVerifier(cfg *config.CaptchaConfig, logger *slog.Logger) (*RecaptchaVerifier, error) {
	if cfg.Secret == "" {
		return nil, errors.New("captcha secret is required when captcha is enabled")
	}

	verifyURL := cfg.VerifyURL
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}

	return &RecaptchaVerifier{
		secret:    cfg.Secret,
		verifyURL: verifyURL,
		minScore:  cfg.MinScore,
		client:    &http.Client{Timeout: verifyTimeout},
		leases:    newLeases(),
		logger:    logger,
	}, nil
}

// Acquire verifies token for action and leases it to the caller.
func (v *RecaptchaVerifier) Acquire(ctx context.Context, token, action string) (service.CaptchaLease, error) {
	if token == "" {
		return nil, domainerrors.ErrCaptchaFailed.WithDetails("missing captcha token")
	}

	l, ok := v.leases.take(token)
	if !ok {
		return nil, domainerrors.ErrCaptchaFailed.WithDetails("captcha token already in use")
	}

	if err := v.verify(ctx, token, action); err != nil {
		l.Release()

		return nil, err
	}

	return l, nil
}

func (v *RecaptchaVerifier) verify(ctx context.Context, token, action string) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, v.logger)

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "failed to build siteverify request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.Warn("Captcha verification unreachable", slog.Any("error", err))

		return domainerrors.ErrNetwork.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domainerrors.ErrNetwork.WithDetails(resp.Status)
	}

	var result siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errors.Wrap(err, "failed to decode siteverify response")
	}

	switch {
	case !result.Success:
		logger.Info("Captcha rejected", slog.Any("error_codes", result.ErrorCodes))

		return domainerrors.ErrCaptchaFailed.WithDetails(strings.Join(result.ErrorCodes, ","))
	case result.Action != "" && action != "" && result.Action != action:
		logger.Info("Captcha action mismatch", slog.String("expected", action), slog.String("actual", result.Action))

		return domainerrors.ErrCaptchaFailed.WithDetails("action mismatch")
	case result.Score != nil && *result.Score < v.minScore:
		logger.Info("Captcha score below threshold", slog.Float64("score", *result.Score))

		return domainerrors.ErrCaptchaFailed.WithDetails("score below threshold")
	}

	return nil
}

// Active returns the number of leases not yet released.
func (v *RecaptchaVerifier) Active() int {
	return v.leases.active()
}

// DisabledVerifier grants every request. Leases are still tracked so that
// callers release them the same way in every environment.
type DisabledVerifier struct {
	leases *leases
}

// NewDisabledVerifier is the constructor for DisabledVerifier.
func NewDisabledVerifier() *DisabledVerifier {
	return &DisabledVerifier{leases: newLeases()}
}

// Acquire always grants a lease. Concurrent requests without a token get
// distinct leases.
func (v *DisabledVerifier) Acquire(_ context.Context, token, _ string) (service.CaptchaLease, error) {
	key := token
	if key == "" {
		key = "anonymous:" + uuid.NewString()
	}

	l, ok := v.leases.take(key)
	if !ok {
		return nil, domainerrors.ErrCaptchaFailed.WithDetails("captcha token already in use")
	}

	return l, nil
}

// Active returns the number of leases not yet released.
func (v *DisabledVerifier) Active() int {
	return v.leases.active()
}

// NewVerifier picks the verifier for the configuration.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.CaptchaVerifier, error) {
	if cfg.Captcha == nil || !cfg.Captcha.Enabled {
		logger.Info("Captcha verification disabled")

		return NewDisabledVerifier(), nil
	}

	return NewRecaptchaVerifier(cfg.Captcha, logger)
}
