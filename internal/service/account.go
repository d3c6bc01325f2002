package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
)

type newAccount struct {
	Email         string
	Phone         *string
	UsernameBase  string
	Verified      bool
	TermsAccepted bool
	FirstName     string
	LastName      string
}

// createAccount inserts the account together with its default profile. The
// account never gets a usable password here.
func (s *Service) createAccount(ctx context.Context, in newAccount) (entity.Account, entity.Profile, error) {
	username, err := s.uniqueUsername(ctx, in.UsernameBase)
	if err != nil {
		return entity.Account{}, entity.Profile{}, err
	}

	password, err := unusablePassword()
	if err != nil {
		return entity.Account{}, entity.Profile{}, err
	}

	now := s.now().UTC()

	account := entity.Account{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        in.Email,
		Phone:        in.Phone,
		Username:     username,
		PasswordHash: password,
		IsActive:     true,
		IsVerified:   in.Verified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.TermsAccepted {
		account.TermsAcceptedAt = &now
	}

	profile := s.newProfile(account.ID, in.FirstName, in.LastName)

	if err := s.accounts.CreateWithProfile(ctx, account, profile); err != nil {
		return entity.Account{}, entity.Profile{}, err
	}

	slog.InfoContext(ctx, "account created", "account_id", account.ID, "username", username)

	return account, profile, nil
}

func (s *Service) newProfile(accountID uuid.UUID, firstName, lastName string) entity.Profile {
	return entity.Profile{
		ID:        uuid.Must(uuid.NewV4()),
		AccountID: accountID,
		FirstName: firstName,
		LastName:  lastName,
		Role:      s.defaultRole(),
		IsDefault: true,
		CreatedAt: s.now().UTC(),
	}
}

func (s *Service) defaultRole() string {
	if s.cfg.OTP.DefaultProfileRole != "" {
		return s.cfg.OTP.DefaultProfileRole
	}

	return entity.DefaultProfileRole
}

// ensureProfile returns the default profile of the account, creating it when
// an earlier flow stopped before the profile existed.
func (s *Service) ensureProfile(ctx context.Context, accountID uuid.UUID, firstName, lastName string) (entity.Profile, error) {
	profile, err := s.profiles.FindDefault(ctx, accountID)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Profile{}, fmt.Errorf("find default profile: %w", err)
	}

	profile = s.newProfile(accountID, firstName, lastName)

	err = s.profiles.CreateDefault(ctx, profile)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "default profile created", "account_id", accountID, "profile_id", profile.ID)
		return profile, nil
	case errors.Is(err, entity.ErrAlreadyExists):
		profile, err = s.profiles.FindDefault(ctx, accountID)
		if err != nil {
			return entity.Profile{}, fmt.Errorf("find default profile: %w", err)
		}

		return profile, nil
	default:
		return entity.Profile{}, fmt.Errorf("create default profile: %w", err)
	}
}

func (s *Service) markVerified(ctx context.Context, account *entity.Account) error {
	if account.IsVerified {
		return nil
	}

	if err := s.accounts.MarkVerified(ctx, account.ID); err != nil {
		return fmt.Errorf("mark account verified: %w", err)
	}

	account.IsVerified = true
	account.UpdatedAt = s.now().UTC()

	return nil
}
