package service

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=../mocks/service.go -package=mocks -typed

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/clients/picture"
	"github.com/samandr77/microservices/identity/internal/entity"
)

type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (entity.Account, error)
	FindByEmail(ctx context.Context, email string) (entity.Account, error)
	FindByPhone(ctx context.Context, phone string) (entity.Account, error)
	FindByLogin(ctx context.Context, login string) (entity.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateWithProfile(ctx context.Context, a entity.Account, p entity.Profile) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	FindDefault(ctx context.Context, accountID uuid.UUID) (entity.Profile, error)
	CreateDefault(ctx context.Context, p entity.Profile) error
	UpdatePicture(ctx context.Context, id uuid.UUID, name, contentType string, data []byte) error
}

type DeviceRepository interface {
	SaveDevice(ctx context.Context, d entity.Device) (entity.Device, error)
}

type OtpRepository interface {
	SaveChallenge(ctx context.Context, c entity.OtpChallenge) error
	LatestUnused(ctx context.Context, target string, channel entity.Channel) (entity.OtpChallenge, error)
	FindActive(ctx context.Context, target string, channel entity.Channel, now time.Time) (entity.OtpChallenge, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID, limit int) (int, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

type DeliveryLogRepository interface {
	SaveDeliveryLog(ctx context.Context, l entity.DeliveryLog) error
}

type SocialLinkRepository interface {
	FindByProviderUser(ctx context.Context, provider, providerUserID string) (entity.SocialAccountLink, error)
	FindByAccountProvider(ctx context.Context, accountID uuid.UUID, provider string) (entity.SocialAccountLink, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]entity.SocialAccountLink, error)
	UpsertLink(ctx context.Context, l entity.SocialAccountLink) (entity.SocialAccountLink, bool, error)
	DeleteLink(ctx context.Context, accountID uuid.UUID, provider string) error
}

type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, accountID uuid.UUID, token string, expiresAt time.Time) error
	ConsumeRefreshToken(ctx context.Context, token string) (uuid.UUID, error)
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
	CleanExpired(ctx context.Context) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) (entity.DeliveryReceipt, error)
}

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, message string) (entity.DeliveryReceipt, error)
}

// SocialProvider turns a client-submitted payload into a verified identity.
type SocialProvider interface {
	Name() string
	Authenticate(ctx context.Context, payload entity.SocialPayload) (entity.SocialIdentity, error)
}

type PictureDownloader interface {
	Download(ctx context.Context, url string) (picture.Picture, error)
}

type EventPublisher interface {
	PublishAuthEvent(ctx context.Context, event entity.AuthEvent)
}
