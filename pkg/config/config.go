package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const (
	TransportConsole = "console"
	TransportTwilio  = "twilio"
	TransportSMTP    = "smtp"
	TransportKafka   = "kafka"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`

	// Peers allowed to set X-Forwarded-For and X-Real-IP, as CIDRs or bare IPs.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	KafkaBrokers           []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"notifications"`
	KafkaAuthEventsTopic   string   `env:"KAFKA_AUTH_EVENTS_TOPIC" envDefault:"auth-events"`

	JWT      JWTConfig
	OTP      OTPConfig
	Throttle ThrottleConfig
	Delivery DeliveryConfig
	Social   SocialConfig

	// TLS
	ServerCert string `env:"TLS_SERVER_CERT"`
	ServerKey  string `env:"TLS_SERVER_KEY"`
}

type JWTConfig struct {
	PrivateKey         string        `env:"JWT_PRIVATE_KEY"`
	PublicKey          string        `env:"JWT_PUBLIC_KEY"`
	Issuer             string        `env:"JWT_ISSUER" envDefault:"identity"`
	AccessTokenExpiry  time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"15m"`
	RefreshTokenExpiry time.Duration `env:"JWT_REFRESH_TOKEN_EXPIRY" envDefault:"720h"`
}

type OTPConfig struct {
	CodeLength         int           `env:"OTP_CODE_LENGTH"          envDefault:"6"`
	CodeTTL            time.Duration `env:"OTP_CODE_TTL"             envDefault:"10m"`
	MaxAttempts        int           `env:"OTP_MAX_ATTEMPTS"         envDefault:"5"`
	ResendCooldown     time.Duration `env:"OTP_RESEND_COOLDOWN"      envDefault:"60s"`
	DefaultCountryCode string        `env:"OTP_DEFAULT_COUNTRY_CODE"`
	DefaultProfileRole string        `env:"OTP_DEFAULT_PROFILE_ROLE" envDefault:"USER"`
	Retention          time.Duration `env:"OTP_RETENTION"            envDefault:"24h"`

	JobDeleteCodeInterval time.Duration `env:"JOB_DELETE_CODE_INTERVAL" envDefault:"1h"`
	TokenCleanupInterval  time.Duration `env:"TOKEN_CLEANUP_INTERVAL" envDefault:"24h"`
}

// ThrottleConfig holds "N/period" rates per named scope. An empty rate
// leaves the scope unlimited.
type ThrottleConfig struct {
	Enabled             bool   `env:"THROTTLE_ENABLED" envDefault:"true"`
	LoginIP             string `env:"THROTTLE_LOGIN_IP" envDefault:"20/m"`
	LoginIdentity       string `env:"THROTTLE_LOGIN_IDENTITY" envDefault:"10/m"`
	OTPRequestIP        string `env:"THROTTLE_OTP_REQUEST_IP" envDefault:"10/m"`
	OTPRequestIdentity  string `env:"THROTTLE_OTP_REQUEST_IDENTITY" envDefault:"5/m"`
	OTPVerifyIP         string `env:"THROTTLE_OTP_VERIFY_IP" envDefault:"20/m"`
	OTPVerifyIdentity   string `env:"THROTTLE_OTP_VERIFY_IDENTITY" envDefault:"10/m"`
	SocialLoginIP       string `env:"THROTTLE_SOCIAL_LOGIN_IP" envDefault:"20/m"`
	SocialLoginIdentity string `env:"THROTTLE_SOCIAL_LOGIN_IDENTITY" envDefault:"10/m"`
	SocialPrecheckIP    string `env:"THROTTLE_SOCIAL_PRECHECK_IP" envDefault:"30/m"`
	TokenRefreshIP      string `env:"THROTTLE_TOKEN_REFRESH_IP" envDefault:"30/m"`
}

type DeliveryConfig struct {
	SMSTransport   string `env:"SMS_TRANSPORT" envDefault:"console"`
	EmailTransport string `env:"EMAIL_TRANSPORT" envDefault:"console"`
	// SMS delivery is always logged; the email log can be switched off.
	EmailLogEnabled bool `env:"EMAIL_LOG_ENABLED" envDefault:"true"`

	EmailSubject string `env:"OTP_EMAIL_SUBJECT" envDefault:"Your verification code"`

	Twilio TwilioConfig
	SMTP   SMTPConfig
}

type TwilioConfig struct {
	BaseURL             string        `env:"TWILIO_BASE_URL" envDefault:"https://api.twilio.com"`
	AccountSID          string        `env:"TWILIO_ACCOUNT_SID"`
	AuthToken           string        `env:"TWILIO_AUTH_TOKEN"`
	FromNumber          string        `env:"TWILIO_FROM_NUMBER"`
	MessagingServiceSID string        `env:"TWILIO_MESSAGING_SERVICE_SID"`
	Timeout             time.Duration `env:"TWILIO_TIMEOUT" envDefault:"10s"`
	RetryAttempts       int           `env:"TWILIO_RETRY_ATTEMPTS" envDefault:"2"`
}

type SMTPConfig struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME"`
}

type SocialConfig struct {
	LinkByEmail          bool `env:"SOCIAL_LINK_BY_EMAIL" envDefault:"true"`
	AutoCreateUser       bool `env:"SOCIAL_AUTO_CREATE_USER" envDefault:"true"`
	RequireVerifiedEmail bool `env:"SOCIAL_REQUIRE_VERIFIED_EMAIL" envDefault:"true"`
	TermsRequired        bool `env:"TERMS_AND_CONDITIONS_REQUIRED" envDefault:"false"`

	SyncPictureOnLogin         bool          `env:"SOCIAL_SYNC_PICTURE_ON_LOGIN" envDefault:"true"`
	PictureDownloadTimeout     time.Duration `env:"SOCIAL_PICTURE_DOWNLOAD_TIMEOUT" envDefault:"5s"`
	PictureMaxBytes            int64         `env:"SOCIAL_PICTURE_MAX_BYTES" envDefault:"5242880"`
	PictureAllowedContentTypes []string      `env:"SOCIAL_PICTURE_ALLOWED_CONTENT_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,image/webp"`

	Google   OIDCProviderConfig `envPrefix:"SOCIAL_GOOGLE_"`
	Apple    OIDCProviderConfig `envPrefix:"SOCIAL_APPLE_"`
	Facebook FacebookConfig
}

type OIDCProviderConfig struct {
	Enabled       bool          `env:"ENABLED" envDefault:"false"`
	Issuer        string        `env:"ISSUER"`
	JWKSURL       string        `env:"JWKS_URL"`
	TokenURL      string        `env:"TOKEN_URL"`
	ClientIDs     []string      `env:"CLIENT_IDS" envSeparator:","`
	ClientSecret  string        `env:"CLIENT_SECRET"`
	JWKSTimeout     time.Duration `env:"JWKS_TIMEOUT" envDefault:"5s"`
	ExchangeTimeout time.Duration `env:"EXCHANGE_TIMEOUT" envDefault:"8s"`
	RetryAttempts   int           `env:"RETRY_ATTEMPTS" envDefault:"1"`
	JWKSCacheTTL  time.Duration `env:"JWKS_CACHE_TTL" envDefault:"5m"`
	JWKSCacheSize uint64        `env:"JWKS_CACHE_SIZE" envDefault:"64"`
}

type FacebookConfig struct {
	Enabled             bool          `env:"SOCIAL_FACEBOOK_ENABLED" envDefault:"false"`
	GraphBaseURL        string        `env:"SOCIAL_FACEBOOK_GRAPH_URL" envDefault:"https://graph.facebook.com"`
	GraphAPIVersion     string        `env:"SOCIAL_FACEBOOK_GRAPH_API_VERSION" envDefault:"v21.0"`
	AppID               string        `env:"SOCIAL_FACEBOOK_APP_ID"`
	AppSecret           string        `env:"SOCIAL_FACEBOOK_APP_SECRET"`
	AssumeEmailVerified bool          `env:"SOCIAL_FACEBOOK_ASSUME_EMAIL_VERIFIED" envDefault:"true"`
	Timeout             time.Duration `env:"SOCIAL_FACEBOOK_TIMEOUT" envDefault:"8s"`
	RetryAttempts       int           `env:"SOCIAL_FACEBOOK_RETRY_ATTEMPTS" envDefault:"1"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	for _, path := range []struct{ name, val string }{
		{"TLS_SERVER_CERT", c.ServerCert},
		{"TLS_SERVER_KEY", c.ServerKey},
	} {
		if path.val == "" {
			continue
		}

		if _, err := os.Stat(path.val); os.IsNotExist(err) {
			return Config{}, fmt.Errorf("missing TLS file for %s: %s", path.name, path.val)
		}
	}

	return c, nil
}

// Validate reports deployment mistakes that must stop the process at start.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.TrustedProxyPrefixes(); err != nil {
		errs = append(errs, err)
	}

	if c.OTP.CodeLength < 4 || c.OTP.CodeLength > 10 {
		errs = append(errs, fmt.Errorf("OTP_CODE_LENGTH must be between 4 and 10, got %d", c.OTP.CodeLength))
	}

	if c.OTP.MaxAttempts < 1 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS must be positive"))
	}

	switch c.Delivery.SMSTransport {
	case TransportConsole:
	case TransportTwilio:
		t := c.Delivery.Twilio
		if t.AccountSID == "" || t.AuthToken == "" {
			errs = append(errs, errors.New("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required"))
		}

		if t.FromNumber == "" && t.MessagingServiceSID == "" {
			errs = append(errs, errors.New("TWILIO_FROM_NUMBER or TWILIO_MESSAGING_SERVICE_SID is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("SMS_TRANSPORT: unknown transport %q", c.Delivery.SMSTransport))
	}

	switch c.Delivery.EmailTransport {
	case TransportConsole:
	case TransportSMTP:
		if c.Delivery.SMTP.Host == "" || c.Delivery.SMTP.From == "" {
			errs = append(errs, errors.New("MAILER_HOST and MAILER_FROM are required"))
		}
	case TransportKafka:
		if len(c.KafkaBrokers) == 0 {
			errs = append(errs, errors.New("KAFKA_BROKERS is required for kafka email transport"))
		}
	default:
		errs = append(errs, fmt.Errorf("EMAIL_TRANSPORT: unknown transport %q", c.Delivery.EmailTransport))
	}

	for name, p := range map[string]OIDCProviderConfig{"SOCIAL_GOOGLE": c.Social.Google, "SOCIAL_APPLE": c.Social.Apple} {
		if !p.Enabled {
			continue
		}

		if p.Issuer == "" || p.JWKSURL == "" || len(p.ClientIDs) == 0 {
			errs = append(errs, fmt.Errorf("%s: issuer, jwks url and client ids are required", name))
		}
	}

	return errors.Join(errs...)
}

// TrustedProxyPrefixes parses TrustedProxies. A bare address becomes a
// single-host prefix.
func (c Config) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))

	for _, raw := range c.TrustedProxies {
		if p, err := netip.ParsePrefix(raw); err == nil {
			prefixes = append(prefixes, p.Masked())
			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: invalid entry %q", raw)
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}
