package service

import (
	"crypto/rsa"
	"encoding/base64"
	"slices"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
)

// Dependencies are the collaborators of Service. SMSLog and SMS are
// mandatory; EmailLog, Pictures and Events may be nil.
type Dependencies struct {
	Accounts  AccountRepository
	Profiles  ProfileRepository
	Devices   DeviceRepository
	Otps      OtpRepository
	SMSLog    DeliveryLogRepository
	EmailLog  DeliveryLogRepository
	Links     SocialLinkRepository
	Tokens    RefreshTokenRepository
	SMS       SMSSender
	Email     EmailSender
	Providers []SocialProvider
	Pictures  PictureDownloader
	Events    EventPublisher
}

type Service struct {
	cfg       config.Config
	accounts  AccountRepository
	profiles  ProfileRepository
	devices   DeviceRepository
	otps      OtpRepository
	smsLog    DeliveryLogRepository
	emailLog  DeliveryLogRepository
	links     SocialLinkRepository
	tokens    RefreshTokenRepository
	sms       SMSSender
	email     EmailSender
	providers map[string]SocialProvider
	pictures  PictureDownloader
	events    EventPublisher

	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey

	now          func() time.Time
	codeHashCost int
}

func NewService(cfg config.Config, deps Dependencies) (*Service, error) {
	if deps.SMSLog == nil {
		return nil, &entity.ConfigurationError{Setting: "sms_logs", Reason: "sms channel requires a delivery log"}
	}

	if deps.SMS == nil {
		return nil, &entity.ConfigurationError{Setting: "SMS_TRANSPORT", Reason: "sms transport is not configured"}
	}

	if deps.Email == nil {
		return nil, &entity.ConfigurationError{Setting: "EMAIL_TRANSPORT", Reason: "email transport is not configured"}
	}

	privateKey, publicKey, err := parseKeys(cfg.JWT)
	if err != nil {
		return nil, err
	}

	providers := make(map[string]SocialProvider, len(deps.Providers))
	for _, p := range deps.Providers {
		providers[strings.ToLower(p.Name())] = p
	}

	return &Service{
		cfg:          cfg,
		accounts:     deps.Accounts,
		profiles:     deps.Profiles,
		devices:      deps.Devices,
		otps:         deps.Otps,
		smsLog:       deps.SMSLog,
		emailLog:     deps.EmailLog,
		links:        deps.Links,
		tokens:       deps.Tokens,
		sms:          deps.SMS,
		email:        deps.Email,
		providers:    providers,
		pictures:     deps.Pictures,
		events:       deps.Events,
		privateKey:   privateKey,
		publicKey:    publicKey,
		now:          time.Now,
		codeHashCost: bcrypt.DefaultCost,
	}, nil
}

func parseKeys(cfg config.JWTConfig) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	pKey, err := base64.StdEncoding.DecodeString(validateJWTKey(cfg.PrivateKey))
	if err != nil {
		return nil, nil, &entity.ConfigurationError{Setting: "JWT_PRIVATE_KEY", Reason: err.Error()}
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pKey)
	if err != nil {
		return nil, nil, &entity.ConfigurationError{Setting: "JWT_PRIVATE_KEY", Reason: err.Error()}
	}

	pubKey, err := base64.StdEncoding.DecodeString(validateJWTKey(cfg.PublicKey))
	if err != nil {
		return nil, nil, &entity.ConfigurationError{Setting: "JWT_PUBLIC_KEY", Reason: err.Error()}
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(pubKey)
	if err != nil {
		return nil, nil, &entity.ConfigurationError{Setting: "JWT_PUBLIC_KEY", Reason: err.Error()}
	}

	return privateKey, publicKey, nil
}

// validateJWTKey strips the quoting and line breaks that env files tend to
// leave around base64 keys.
func validateJWTKey(key string) string {
	return strings.TrimSpace(strings.NewReplacer(
		`\`, "", `"`, "", " ", "", "\n", "", "\r", "", "{", "", "}", "",
	).Replace(key))
}

func (s *Service) provider(name string) (SocialProvider, error) {
	p, ok := s.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, entity.ErrSocialProviderNotSupported
	}

	return p, nil
}

// Providers returns the names of the enabled social providers.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
