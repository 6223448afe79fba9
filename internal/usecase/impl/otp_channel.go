package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strings"
	"time"

	"railmadad/config"
	deliverycontext "railmadad/internal/delivery/context"
	"railmadad/internal/domain/entity"
	domainerrors "railmadad/internal/domain/errors"
	"railmadad/internal/domain/repository"
	"railmadad/internal/domain/service"
	"railmadad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const captchaActionPhoneOTP = "phone_otp"

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// NormalizePhone strips separators, prefixes bare 10-digit numbers with
// countryCode and checks the result is E.164.
func NormalizePhone(raw, countryCode string) (string, error) {
	phone := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}

		return r
	}, strings.TrimSpace(raw))

	if len(phone) == 10 && !strings.HasPrefix(phone, "+") {
		phone = countryCode + phone
	}

	if !e164Pattern.MatchString(phone) {
		return "", domainerrors.ErrInvalidPhoneFormat
	}

	return phone, nil
}

// otpChannel implements the OTPChannel interface.
type otpChannel struct {
	challenges  repository.ChallengeRepository
	sms         service.SMSTransport
	captcha     service.CaptchaVerifier
	ttl         time.Duration
	maxAttempts int
	countryCode string
	now         func() time.Time
	newCode     func() (string, error)
	logger      *slog.Logger
}

// OTPChannelParams holds dependencies for OTPChannel, injected by Fx.
type OTPChannelParams struct {
	fx.In

	Challenges repository.ChallengeRepository
	SMS        service.SMSTransport
	Captcha    service.CaptchaVerifier
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOTPChannel is the constructor for otpChannel.
func NewOTPChannel(params OTPChannelParams) usecase.OTPChannel {
	return &otpChannel{
		challenges:  params.Challenges,
		sms:         params.SMS,
		captcha:     params.Captcha,
		ttl:         params.Config.OTP.TTL,
		maxAttempts: params.Config.OTP.MaxAttempts,
		countryCode: params.Config.OTP.DefaultCountryCode,
		now:         time.Now,
		newCode:     randomCode,
		logger:      params.Logger,
	}
}

func (c *otpChannel) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// IssueChallenge sends a fresh code and makes it the only live challenge of
// the client session. Nothing is stored unless the SMS was accepted.
func (c *otpChannel) IssueChallenge(ctx context.Context, clientSessionID, rawPhone, captchaToken string) (*usecase.IssuedChallenge, error) {
	phone, err := NormalizePhone(rawPhone, c.countryCode)
	if err != nil {
		return nil, err
	}

	lease, err := c.captcha.Acquire(ctx, captchaToken, captchaActionPhoneOTP)
	if err != nil {
		return nil, err
	}
	defer lease.Release()

	code, err := c.newCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate otp code")
	}

	message := fmt.Sprintf("Your Rail Madad verification code is %s. It expires in %d minutes.",
		code, int(c.ttl.Minutes()))
	if err := c.sms.Send(ctx, phone, message); err != nil {
		c.log(ctx).Warn("OTP delivery failed", slog.String("phone", maskPhone(phone)), slog.Any("error", err))

		return nil, err
	}

	challenge := &entity.OTPChallenge{
		Code:     code,
		Phone:    phone,
		IssuedAt: c.now(),
		TTL:      c.ttl,
	}
	if err := c.challenges.SaveOTP(ctx, clientSessionID, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to store otp challenge")
	}

	c.log(ctx).Info("OTP challenge issued", slog.String("phone", maskPhone(phone)))

	return &usecase.IssuedChallenge{
		Phone:     phone,
		ExpiresAt: challenge.ExpiresAt(),
	}, nil
}

// Verify consumes the live challenge with code. Expired challenges are
// removed; a wrong code leaves the challenge in place until maxAttempts
// wrong codes have been tried.
func (c *otpChannel) Verify(ctx context.Context, clientSessionID, code string) (*entity.OTPChallenge, error) {
	challenge, err := c.challenges.ConsumeOTP(ctx, clientSessionID, code, c.now(), c.maxAttempts)
	switch {
	case err == nil:
		return challenge, nil
	case errors.Is(err, repository.ErrChallengeNotFound):
		return nil, domainerrors.ErrNoActiveChallenge
	case errors.Is(err, repository.ErrChallengeExpired):
		return nil, domainerrors.ErrChallengeExpired
	case errors.Is(err, repository.ErrOTPMismatch):
		return nil, domainerrors.ErrCodeMismatch
	case errors.Is(err, repository.ErrOTPAttemptsExceeded):
		c.log(ctx).Warn("OTP challenge discarded after too many wrong codes")

		return nil, domainerrors.ErrTooManyRequests
	default:
		return nil, errors.Wrap(err, "failed to verify otp challenge")
	}
}

// randomCode returns six decimal digits without a leading zero.
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}

	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
