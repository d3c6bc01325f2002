package service_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/identity/internal/mocks"
	"github.com/samandr77/microservices/identity/internal/service"
	"github.com/samandr77/microservices/identity/pkg/config"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var testKeys = sync.OnceValues(func() (string, string) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		panic(err)
	}

	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	return base64.StdEncoding.EncodeToString(privPEM), base64.StdEncoding.EncodeToString(pubPEM)
})

func testConfig() config.Config {
	priv, pub := testKeys()

	return config.Config{
		JWT: config.JWTConfig{
			PrivateKey:         priv,
			PublicKey:          pub,
			Issuer:             "identity",
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		OTP: config.OTPConfig{
			CodeLength:         6,
			CodeTTL:            10 * time.Minute,
			MaxAttempts:        5,
			ResendCooldown:     time.Minute,
			DefaultCountryCode: "44",
			DefaultProfileRole: "USER",
			Retention:          24 * time.Hour,
		},
		Delivery: config.DeliveryConfig{
			SMSTransport:   config.TransportTwilio,
			EmailTransport: config.TransportSMTP,
			EmailSubject:   "Your verification code",
		},
		Social: config.SocialConfig{
			LinkByEmail:          true,
			AutoCreateUser:       true,
			RequireVerifiedEmail: true,
			SyncPictureOnLogin:   true,
		},
	}
}

type testService struct {
	accounts *mocks.MockAccountRepository
	profiles *mocks.MockProfileRepository
	devices  *mocks.MockDeviceRepository
	otps     *mocks.MockOtpRepository
	smsLog   *mocks.MockDeliveryLogRepository
	emailLog *mocks.MockDeliveryLogRepository
	links    *mocks.MockSocialLinkRepository
	tokens   *mocks.MockRefreshTokenRepository
	sms      *mocks.MockSMSSender
	email    *mocks.MockEmailSender
	google   *mocks.MockSocialProvider
	pictures *mocks.MockPictureDownloader
	events   *mocks.MockEventPublisher

	cfg config.Config
	s   *service.Service
}

func newTestService(t *testing.T, mutate ...func(*config.Config)) *testService {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(&cfg)
	}

	ctrl := gomock.NewController(t)

	ts := &testService{
		accounts: mocks.NewMockAccountRepository(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		devices:  mocks.NewMockDeviceRepository(ctrl),
		otps:     mocks.NewMockOtpRepository(ctrl),
		smsLog:   mocks.NewMockDeliveryLogRepository(ctrl),
		emailLog: mocks.NewMockDeliveryLogRepository(ctrl),
		links:    mocks.NewMockSocialLinkRepository(ctrl),
		tokens:   mocks.NewMockRefreshTokenRepository(ctrl),
		sms:      mocks.NewMockSMSSender(ctrl),
		email:    mocks.NewMockEmailSender(ctrl),
		google:   mocks.NewMockSocialProvider(ctrl),
		pictures: mocks.NewMockPictureDownloader(ctrl),
		events:   mocks.NewMockEventPublisher(ctrl),
		cfg:      cfg,
	}

	ts.google.EXPECT().Name().Return("google").AnyTimes()

	s, err := service.NewService(cfg, service.Dependencies{
		Accounts:  ts.accounts,
		Profiles:  ts.profiles,
		Devices:   ts.devices,
		Otps:      ts.otps,
		SMSLog:    ts.smsLog,
		EmailLog:  ts.emailLog,
		Links:     ts.links,
		Tokens:    ts.tokens,
		SMS:       ts.sms,
		Email:     ts.email,
		Providers: []service.SocialProvider{ts.google},
		Pictures:  ts.pictures,
		Events:    ts.events,
	})
	require.NoError(t, err)

	service.SetClock(s, func() time.Time { return fixedNow })
	service.SetCodeHashCost(s, bcrypt.MinCost)

	ts.s = s

	return ts
}

// expectSession allows the token and event side effects of a successful login.
func (ts *testService) expectSession() {
	ts.tokens.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.events.EXPECT().PublishAuthEvent(gomock.Any(), gomock.Any())
}

func hashCode(t *testing.T, code string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}
