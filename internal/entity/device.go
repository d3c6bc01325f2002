package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ClientType string

const (
	ClientWeb    ClientType = "web"
	ClientMobile ClientType = "mobile"
)

func ParseClientType(s string) (ClientType, error) {
	switch ClientType(strings.ToLower(strings.TrimSpace(s))) {
	case ClientWeb:
		return ClientWeb, nil
	case ClientMobile:
		return ClientMobile, nil
	default:
		return "", NewValidationError("client", "must be 'web' or 'mobile'")
	}
}

const (
	DefaultDevicePlatform = "Unknown Platform"
	DefaultDeviceName     = "Unknown Device"
)

type Device struct {
	ID                uuid.UUID `json:"id"`
	AccountID         uuid.UUID `json:"accountId"`
	Platform          string    `json:"platform"`
	Name              string    `json:"name"`
	Token             *string   `json:"token"`
	NotificationToken string    `json:"notificationToken"`
	LinkedAt          time.Time `json:"linkedAt"`
}

// DeviceInfo is the device payload a mobile client sends with a login.
type DeviceInfo struct {
	Platform          string `json:"platform"`
	Name              string `json:"name"`
	Token             string `json:"token"`
	NotificationToken string `json:"notificationToken"`
}
