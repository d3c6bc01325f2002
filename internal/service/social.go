package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

type SocialLoginInput struct {
	Provider      string
	Payload       entity.SocialPayload
	Client        entity.ClientType
	Device        *entity.DeviceInfo
	TermsAccepted bool
}

var errEmailTaken = entity.ErrSocialAlreadyLinked.WithDetail("an account with this email already exists")

type socialResolution struct {
	account        entity.Account
	profile        *entity.Profile
	created        bool
	linkedExisting bool
}

func (s *Service) authenticate(ctx context.Context, providerName string, payload entity.SocialPayload) (entity.SocialIdentity, error) {
	p, err := s.provider(providerName)
	if err != nil {
		return entity.SocialIdentity{}, err
	}

	identity, err := p.Authenticate(ctx, payload)
	if err != nil {
		return entity.SocialIdentity{}, err
	}

	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))

	return identity, nil
}

// SocialLogin signs in with a third-party identity. The account is the one
// already linked to the identity, else the account with the same email, else
// a new one, depending on the link and auto-create policies.
func (s *Service) SocialLogin(ctx context.Context, in SocialLoginInput) (entity.SessionResponse, error) {
	if err := ValidateClient(in.Client, in.Device); err != nil {
		return entity.SessionResponse{}, err
	}

	ctx = logger.SetProvider(ctx, in.Provider)
	slog.InfoContext(ctx, "social login started", "client", in.Client)

	identity, err := s.authenticate(ctx, in.Provider, in.Payload)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	res, err := s.resolveSocialAccount(ctx, identity, in.TermsAccepted)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	ctx = logger.SetUserID(ctx, res.account.ID.String())

	link, _, err := s.upsertLink(ctx, res.account.ID, identity)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	var profile entity.Profile
	if res.profile != nil {
		profile = *res.profile
	} else {
		profile, err = s.ensureProfile(ctx, res.account.ID, identity.FirstName, identity.LastName)
		if err != nil {
			return entity.SessionResponse{}, err
		}
	}

	s.syncPicture(ctx, &profile, identity.PictureURL)

	resp, err := s.startSession(ctx, sessionRequest{
		account:  res.account,
		profile:  profile,
		client:   in.Client,
		device:   in.Device,
		method:   MethodSocial,
		provider: identity.Provider,
	})
	if err != nil {
		return entity.SessionResponse{}, err
	}

	resp.SocialProvider = identity.Provider
	resp.UserCreated = &res.created
	resp.LinkedExistingUser = &res.linkedExisting
	resp.SocialAccountID = &link.ID

	slog.InfoContext(ctx, "social login succeeded",
		"user_created", res.created, "linked_existing_user", res.linkedExisting)

	return resp, nil
}

func (s *Service) resolveSocialAccount(
	ctx context.Context,
	identity entity.SocialIdentity,
	termsAccepted bool,
) (socialResolution, error) {
	link, err := s.links.FindByProviderUser(ctx, identity.Provider, identity.ProviderUserID)
	if err == nil {
		account, err := s.accounts.FindByID(ctx, link.AccountID)
		if err != nil {
			return socialResolution{}, fmt.Errorf("find linked account: %w", err)
		}

		return socialResolution{account: account}, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return socialResolution{}, fmt.Errorf("find social link: %w", err)
	}

	if s.cfg.Social.LinkByEmail && identity.Email != "" {
		account, err := s.accounts.FindByEmail(ctx, identity.Email)
		if err == nil {
			slog.InfoContext(ctx, "social identity linked to existing account by email", "account_id", account.ID)
			return socialResolution{account: account, linkedExisting: true}, nil
		}

		if !errors.Is(err, entity.ErrNotFound) {
			return socialResolution{}, fmt.Errorf("find account by email: %w", err)
		}
	}

	if !s.cfg.Social.AutoCreateUser {
		return socialResolution{}, entity.ErrSocialNotLinked
	}

	return s.createSocialAccount(ctx, identity, termsAccepted)
}

func (s *Service) createSocialAccount(
	ctx context.Context,
	identity entity.SocialIdentity,
	termsAccepted bool,
) (socialResolution, error) {
	if identity.Email == "" {
		return socialResolution{}, entity.ErrSocialEmailMissing
	}

	if s.cfg.Social.RequireVerifiedEmail && !identity.EmailVerified {
		return socialResolution{}, entity.ErrSocialEmailNotVerified
	}

	if s.cfg.Social.TermsRequired && !termsAccepted {
		return socialResolution{}, entity.ErrTermsRequired
	}

	account, profile, err := s.createAccount(ctx, newAccount{
		Email:         identity.Email,
		UsernameBase:  usernameBase(identity.Email, identity.Provider, identity.ProviderUserID),
		Verified:      identity.EmailVerified,
		TermsAccepted: termsAccepted,
		FirstName:     identity.FirstName,
		LastName:      identity.LastName,
	})
	if err == nil {
		slog.InfoContext(ctx, "social account created", "account_id", account.ID)
		return socialResolution{account: account, profile: &profile, created: true}, nil
	}

	if !errors.Is(err, entity.ErrAlreadyExists) {
		return socialResolution{}, fmt.Errorf("create account: %w", err)
	}

	// The email belongs to an account that is not linked to this identity.
	// Only the link-by-email policy may hand that account out.
	if !s.cfg.Social.LinkByEmail {
		slog.WarnContext(logger.SetLogType(ctx, "security"), "social sign-up hit an existing email")
		return socialResolution{}, errEmailTaken
	}

	account, err = s.accounts.FindByEmail(ctx, identity.Email)
	if err != nil {
		return socialResolution{}, fmt.Errorf("find account by email: %w", err)
	}

	slog.InfoContext(ctx, "social identity linked to existing account by email", "account_id", account.ID)

	return socialResolution{account: account, linkedExisting: true}, nil
}

func (s *Service) upsertLink(
	ctx context.Context,
	accountID uuid.UUID,
	identity entity.SocialIdentity,
) (entity.SocialAccountLink, bool, error) {
	now := s.now().UTC()

	link, created, err := s.links.UpsertLink(ctx, entity.SocialAccountLink{
		ID:             uuid.Must(uuid.NewV4()),
		AccountID:      accountID,
		Provider:       identity.Provider,
		ProviderUserID: identity.ProviderUserID,
		Email:          identity.Email,
		EmailVerified:  identity.EmailVerified,
		PictureURL:     identity.PictureURL,
		RawResponse:    identity.RawClaims,
		LastLoginAt:    now,
		CreatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			slog.WarnContext(logger.SetLogType(ctx, "security"), "social link conflict",
				"account_id", accountID, "provider", identity.Provider)

			return entity.SocialAccountLink{}, false, entity.ErrSocialAlreadyLinked
		}

		return entity.SocialAccountLink{}, false, fmt.Errorf("upsert social link: %w", err)
	}

	return link, created, nil
}

// SocialPrecheck reports what SocialLogin would do for the identity without
// changing anything.
func (s *Service) SocialPrecheck(ctx context.Context, providerName string, payload entity.SocialPayload) (entity.SocialPrecheck, error) {
	ctx = logger.SetProvider(ctx, providerName)

	identity, err := s.authenticate(ctx, providerName, payload)
	if err != nil {
		return entity.SocialPrecheck{}, err
	}

	socialAccountExists := true

	_, err = s.links.FindByProviderUser(ctx, identity.Provider, identity.ProviderUserID)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			return entity.SocialPrecheck{}, fmt.Errorf("find social link: %w", err)
		}

		socialAccountExists = false
	}

	linkedExisting := false
	emailTaken := false

	if !socialAccountExists && identity.Email != "" {
		_, err := s.accounts.FindByEmail(ctx, identity.Email)
		switch {
		case err == nil && s.cfg.Social.LinkByEmail:
			linkedExisting = true
		case err == nil:
			emailTaken = true
		case !errors.Is(err, entity.ErrNotFound):
			return entity.SocialPrecheck{}, fmt.Errorf("find account by email: %w", err)
		}
	}

	userExists := socialAccountExists || linkedExisting
	autoCreate := s.cfg.Social.AutoCreateUser && !emailTaken

	return entity.SocialPrecheck{
		Provider:            identity.Provider,
		Email:               identity.Email,
		EmailVerified:       identity.EmailVerified,
		SocialAccountExists: socialAccountExists,
		LinkedExistingUser:  linkedExisting,
		UserExists:          userExists,
		WouldCreateUser:     !userExists && autoCreate,
		CanLogin:            userExists || autoCreate,
	}, nil
}

// LinkSocialAccount attaches the identity to the authenticated account. An
// identity owned by another account is never reassigned.
func (s *Service) LinkSocialAccount(
	ctx context.Context,
	accountID uuid.UUID,
	providerName string,
	payload entity.SocialPayload,
) (entity.SocialLinkResult, error) {
	ctx = logger.SetProvider(ctx, providerName)

	identity, err := s.authenticate(ctx, providerName, payload)
	if err != nil {
		return entity.SocialLinkResult{}, err
	}

	existing, err := s.links.FindByProviderUser(ctx, identity.Provider, identity.ProviderUserID)
	switch {
	case err == nil:
		if existing.AccountID != accountID {
			slog.WarnContext(logger.SetLogType(ctx, "security"), "social link rejected",
				"account_id", accountID, "existing_account_id", existing.AccountID)

			return entity.SocialLinkResult{}, entity.ErrSocialAlreadyLinked
		}
	case errors.Is(err, entity.ErrNotFound):
		// one identity per provider and account
		other, err := s.links.FindByAccountProvider(ctx, accountID, identity.Provider)
		switch {
		case err == nil:
			slog.WarnContext(logger.SetLogType(ctx, "security"), "social link rejected, provider already linked",
				"account_id", accountID, "social_account_id", other.ID)

			return entity.SocialLinkResult{}, entity.ErrSocialAlreadyLinked.WithDetail(
				"a different " + identity.Provider + " account is already linked to this user")
		case !errors.Is(err, entity.ErrNotFound):
			return entity.SocialLinkResult{}, fmt.Errorf("find social link by account: %w", err)
		}
	default:
		return entity.SocialLinkResult{}, fmt.Errorf("find social link: %w", err)
	}

	link, created, err := s.upsertLink(ctx, accountID, identity)
	if err != nil {
		return entity.SocialLinkResult{}, err
	}

	if identity.PictureURL != "" {
		profile, err := s.profiles.FindDefault(ctx, accountID)
		if err == nil {
			s.syncPicture(ctx, &profile, identity.PictureURL)
		}
	}

	slog.InfoContext(ctx, "social account linked", "account_id", accountID, "created", created)

	return entity.SocialLinkResult{
		Provider:        identity.Provider,
		SocialAccountID: link.ID,
		Created:         created,
	}, nil
}

func (s *Service) UnlinkSocialAccount(ctx context.Context, accountID uuid.UUID, providerName string) error {
	p, err := s.provider(providerName)
	if err != nil {
		return err
	}

	if err := s.links.DeleteLink(ctx, accountID, p.Name()); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrSocialNotFound
		}

		return fmt.Errorf("delete social link: %w", err)
	}

	slog.InfoContext(logger.SetProvider(ctx, p.Name()), "social account unlinked", "account_id", accountID)

	return nil
}

func (s *Service) ListSocialAccounts(ctx context.Context, accountID uuid.UUID) ([]entity.SocialAccountLink, error) {
	links, err := s.links.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}

	return links, nil
}
