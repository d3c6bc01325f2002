package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
)

// ValidateClient rejects a mobile login without a device payload or without a
// notification token in it. Web clients are never checked.
func ValidateClient(client entity.ClientType, device *entity.DeviceInfo) error {
	switch client {
	case entity.ClientWeb:
		return nil
	case entity.ClientMobile:
		if device == nil {
			return entity.NewValidationError("device", "device info is required for mobile clients")
		}

		if strings.TrimSpace(device.NotificationToken) == "" {
			return entity.NewValidationError("device.notificationToken", "notification token is required for mobile clients")
		}

		return nil
	default:
		return entity.NewValidationError("client", "must be 'web' or 'mobile'")
	}
}

// Adapt shapes the session response for the client type. Mobile clients get
// their device registered; tokens are left out when none were issued.
func (s *Service) Adapt(
	ctx context.Context,
	client entity.ClientType,
	account entity.Account,
	profile entity.Profile,
	tokens *entity.Tokens,
	device *entity.DeviceInfo,
) (entity.SessionResponse, error) {
	if err := ValidateClient(client, device); err != nil {
		return entity.SessionResponse{}, err
	}

	resp := entity.SessionResponse{
		User: entity.SessionUser{
			ID:         account.ID,
			Email:      account.Email,
			Phone:      account.Phone,
			Username:   account.Username,
			IsVerified: account.IsVerified,
		},
		ActiveProfile:             profile,
		Tokens:                    tokens,
		TermsAcceptedAt:           account.TermsAcceptedAt,
		ProfileCompletionRequired: profile.CompletionRequired(),
	}

	if client != entity.ClientMobile {
		return resp, nil
	}

	if _, err := s.registerDevice(ctx, account.ID, *device); err != nil {
		return entity.SessionResponse{}, err
	}

	resp.DeviceRegistered = true

	return resp, nil
}

func (s *Service) registerDevice(ctx context.Context, accountID uuid.UUID, info entity.DeviceInfo) (entity.Device, error) {
	d := entity.Device{
		ID:                uuid.Must(uuid.NewV4()),
		AccountID:         accountID,
		Platform:          strings.TrimSpace(info.Platform),
		Name:              strings.TrimSpace(info.Name),
		NotificationToken: info.NotificationToken,
		LinkedAt:          s.now().UTC(),
	}

	if d.Platform == "" {
		d.Platform = entity.DefaultDevicePlatform
	}

	if d.Name == "" {
		d.Name = entity.DefaultDeviceName
	}

	if token := strings.TrimSpace(info.Token); token != "" {
		d.Token = &token
	}

	saved, err := s.devices.SaveDevice(ctx, d)
	if err != nil {
		return entity.Device{}, fmt.Errorf("save device: %w", err)
	}

	slog.InfoContext(ctx, "device registered", "account_id", accountID, "device_id", saved.ID, "platform", saved.Platform)

	return saved, nil
}
