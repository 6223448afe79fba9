package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCookieName         = "rm_sid"
	defaultOTPTTL             = 15 * time.Minute
	defaultCountryCode        = "+91"
	defaultOTPMaxAttempts     = 5
	defaultSMSAttempts        = 3
	defaultSMSBaseDelay       = time.Second
	defaultSMSMaxDelay        = 10 * time.Second
	defaultMFAChallengeTTL    = 5 * time.Minute
	defaultNoticeDismiss      = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// Browser origins allowed to call the gateway with credentials.
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts     struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
		Admin   string `json:"admin" yaml:"admin"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for the identity provider and the profile store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Backend configuration for the profile sync REST API
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	SMS *SMSConfig `json:"sms" yaml:"sms"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for role change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Captcha *CaptchaConfig `json:"captcha" yaml:"captcha"`

	Redirects *RedirectConfig `json:"redirects" yaml:"redirects"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// AllowAdminSignup lets a sign-up request self-select the admin role.
	// Leave disabled unless an out-of-band approval exists.
	AllowAdminSignup bool          `json:"allowAdminSignup" yaml:"allowAdminSignup"`
	AdminTokenTTL    time.Duration `json:"adminTokenTTL" yaml:"adminTokenTTL"`
	PhoneTokenTTL    time.Duration `json:"phoneTokenTTL" yaml:"phoneTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used for sign-in and profile documents
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	// APIKey is the web API key used against the Identity Toolkit REST API.
	APIKey string `json:"apiKey" yaml:"apiKey"`
	// IdentityToolkitURL overrides https://identitytoolkit.googleapis.com (emulator).
	IdentityToolkitURL string        `json:"identityToolkitUrl" yaml:"identityToolkitUrl"`
	ProfileCollection  string        `json:"profileCollection" yaml:"profileCollection"`
	RequestTimeout     time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// BackendConfig defines the application's own profile API
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SMSBackend is one relay able to deliver OTP text messages.
type SMSBackend struct {
	Name    string `json:"name" yaml:"name"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Token   string `json:"token" yaml:"token"`
}

// SMSConfig defines the ordered SMS relays and their retry policy
type SMSConfig struct {
	// Backends are tried in order; the second one is only used after the
	// first rejects our credentials.
	Backends    []SMSBackend  `json:"backends" yaml:"backends"`
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
	BaseDelay   time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay    time.Duration `json:"maxDelay" yaml:"maxDelay"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

type OTPConfig struct {
	TTL                time.Duration `json:"ttl" yaml:"ttl"`
	DefaultCountryCode string        `json:"defaultCountryCode" yaml:"defaultCountryCode"`
	// MaxAttempts wrong codes discard the challenge.
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
}

// SessionConfig defines where session snapshots and challenges live
type SessionConfig struct {
	// Store is "memory" or "redis".
	Store           string        `json:"store" yaml:"store"`
	CookieName      string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure    bool          `json:"cookieSecure" yaml:"cookieSecure"`
	TTL             time.Duration `json:"ttl" yaml:"ttl"`
	MFAChallengeTTL time.Duration `json:"mfaChallengeTTL" yaml:"mfaChallengeTTL"`
	NoticeDismiss   time.Duration `json:"noticeDismiss" yaml:"noticeDismiss"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// PubSubConfig defines Pub/Sub configuration for role change events
type PubSubConfig struct {
	// Provider type: "local" for the in-process broadcaster only, "http" to
	// also push to Endpoint, or "google" to also publish to Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Push endpoint (for http provider)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`
}

// CaptchaConfig defines the reCAPTCHA check guarding phone code issuance
type CaptchaConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	Secret    string  `json:"secret" yaml:"secret"`
	VerifyURL string  `json:"verifyUrl" yaml:"verifyUrl"`
	MinScore  float64 `json:"minScore" yaml:"minScore"`
}

// RedirectConfig lists the front-end routes the gateway sends users to
type RedirectConfig struct {
	Login              string `json:"login" yaml:"login"`
	Unauthorized       string `json:"unauthorized" yaml:"unauthorized"`
	AdminDashboard     string `json:"adminDashboard" yaml:"adminDashboard"`
	PassengerDashboard string `json:"passengerDashboard" yaml:"passengerDashboard"`
	ProfileCompletion  string `json:"profileCompletion" yaml:"profileCompletion"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: SMS_MAXATTEMPTS -> sms.maxAttempts
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so that consumers never see nil.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.AdminTokenTTL <= 0 {
		cfg.Auth.AdminTokenTTL = 12 * time.Hour
	}
	if cfg.Auth.PhoneTokenTTL <= 0 {
		cfg.Auth.PhoneTokenTTL = 12 * time.Hour
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.ProfileCollection == "" {
		cfg.Firebase.ProfileCollection = "users"
	}
	if cfg.Firebase.RequestTimeout <= 0 {
		cfg.Firebase.RequestTimeout = 15 * time.Second
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = 10 * time.Second
	}

	if cfg.SMS == nil {
		cfg.SMS = &SMSConfig{}
	}
	if cfg.SMS.MaxAttempts <= 0 {
		cfg.SMS.MaxAttempts = defaultSMSAttempts
	}
	if cfg.SMS.BaseDelay <= 0 {
		cfg.SMS.BaseDelay = defaultSMSBaseDelay
	}
	if cfg.SMS.MaxDelay <= 0 {
		cfg.SMS.MaxDelay = defaultSMSMaxDelay
	}
	if cfg.SMS.Timeout <= 0 {
		cfg.SMS.Timeout = 10 * time.Second
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.TTL <= 0 {
		cfg.OTP.TTL = defaultOTPTTL
	}
	if cfg.OTP.MaxAttempts <= 0 {
		cfg.OTP.MaxAttempts = defaultOTPMaxAttempts
	}
	if cfg.OTP.DefaultCountryCode == "" {
		cfg.OTP.DefaultCountryCode = defaultCountryCode
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = "memory"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = 7 * 24 * time.Hour
	}
	if cfg.Session.MFAChallengeTTL <= 0 {
		cfg.Session.MFAChallengeTTL = defaultMFAChallengeTTL
	}
	if cfg.Session.NoticeDismiss <= 0 {
		cfg.Session.NoticeDismiss = defaultNoticeDismiss
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "railmadad"
	}

	if cfg.Captcha == nil {
		cfg.Captcha = &CaptchaConfig{}
	}
	if cfg.Captcha.VerifyURL == "" {
		cfg.Captcha.VerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	}

	if cfg.Redirects == nil {
		cfg.Redirects = &RedirectConfig{}
	}
	setDefault(&cfg.Redirects.Login, "/login")
	setDefault(&cfg.Redirects.Unauthorized, "/unauthorized")
	setDefault(&cfg.Redirects.AdminDashboard, "/admin/dashboard")
	setDefault(&cfg.Redirects.PassengerDashboard, "/passenger/dashboard")
	setDefault(&cfg.Redirects.ProfileCompletion, "/profile/complete")
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
