package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelSMS
}

// OtpChallenge is one issued one-time code. CodeHash is a bcrypt hash of the
// plain code, which is only known to the delivery transport.
type OtpChallenge struct {
	ID         uuid.UUID
	Target     string
	Channel    Channel
	CodeHash   string
	CreatedAt  time.Time
	LastSentAt time.Time
	ExpiresAt  time.Time
	Used       bool
	Attempts   int
}

func (c OtpChallenge) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

type DeliveryLog struct {
	ID           uuid.UUID
	Channel      Channel
	Target       string
	Provider     string
	Status       DeliveryStatus
	ErrorMessage string
	CreatedAt    time.Time
}

type DeliveryReceipt struct {
	Provider  string
	MessageID string
}
