package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

const (
	MethodOTP      = "otp"
	MethodPassword = "password"
	MethodSocial   = "social"
	MethodRefresh  = "refresh"
)

type sessionRequest struct {
	account  entity.Account
	profile  entity.Profile
	client   entity.ClientType
	device   *entity.DeviceInfo
	method   string
	provider string
}

// startSession issues tokens for the account, adapts the response to the
// client and publishes the login event.
func (s *Service) startSession(ctx context.Context, req sessionRequest) (entity.SessionResponse, error) {
	tokens, err := s.Issue(ctx, req.account, req.profile)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	resp, err := s.Adapt(ctx, req.client, req.account, req.profile, tokens, req.device)
	if err != nil {
		return entity.SessionResponse{}, err
	}

	s.publish(ctx, req.account.ID, req.method, req.provider, req.client)

	return resp, nil
}

// Issue signs an access and a refresh token sharing one jti and stores the
// refresh token.
func (s *Service) Issue(ctx context.Context, account entity.Account, profile entity.Profile) (*entity.Tokens, error) {
	now := s.now()
	jti := uuid.Must(uuid.NewV4()).String()
	refreshExpiresAt := now.Add(s.cfg.JWT.RefreshTokenExpiry)

	refreshToken, err := s.sign(account, profile, entity.TokenTypeRefresh, jti, now, refreshExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	accessToken, err := s.sign(account, profile, entity.TokenTypeAccess, jti, now, now.Add(s.cfg.JWT.AccessTokenExpiry))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	if err := s.tokens.SaveRefreshToken(ctx, account.ID, refreshToken, refreshExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return &entity.Tokens{
		Access:          accessToken,
		Refresh:         refreshToken,
		RefreshTokenTTL: s.cfg.JWT.RefreshTokenExpiry,
	}, nil
}

func (s *Service) sign(
	account entity.Account,
	profile entity.Profile,
	tokenType, jti string,
	issuedAt, expiresAt time.Time,
) (string, error) {
	claims := entity.SessionClaims{
		AccountID: account.ID,
		ProfileID: profile.ID,
		Role:      profile.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.cfg.JWT.Issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
}

func (s *Service) parse(raw, tokenType string) (entity.SessionClaims, error) {
	var claims entity.SessionClaims

	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.publicKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.cfg.JWT.Issuer), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return claims, entity.ErrTokenExpired
		}

		return claims, fmt.Errorf("%w: %w", entity.ErrTokenInvalid, err)
	}

	if !token.Valid || claims.TokenType != tokenType || claims.AccountID == uuid.Nil || claims.ID == "" {
		return claims, entity.ErrTokenInvalid
	}

	return claims, nil
}

// RefreshToken rotates the refresh token: the presented one is consumed and
// can never be used again.
func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (*entity.Tokens, error) {
	claims, err := s.parse(refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("parse refresh token: %w", err)
	}

	accountID, err := s.tokens.ConsumeRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, entity.ErrTokenNotFound) {
			slog.WarnContext(logger.SetLogType(ctx, "security"), "refresh token reuse or revoked",
				"account_id", claims.AccountID)
		}

		return nil, fmt.Errorf("consume refresh token: %w", err)
	}

	if accountID != claims.AccountID {
		return nil, entity.ErrTokenInvalid
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	if !account.IsActive {
		return nil, entity.ErrUnauthorized
	}

	profile, err := s.ensureProfile(ctx, account.ID, "", "")
	if err != nil {
		return nil, err
	}

	tokens, err := s.Issue(ctx, account, profile)
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}

	s.publish(ctx, account.ID, MethodRefresh, "", "")

	return tokens, nil
}

func (s *Service) ValidateToken(_ context.Context, accessToken string) (entity.SessionClaims, error) {
	return s.parse(accessToken, entity.TokenTypeAccess)
}

func (s *Service) RevokeTokens(ctx context.Context, accountID uuid.UUID) error {
	if err := s.tokens.DeleteByAccountID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}

func (s *Service) publish(ctx context.Context, accountID uuid.UUID, method, provider string, client entity.ClientType) {
	if s.events == nil {
		return
	}

	s.events.PublishAuthEvent(ctx, entity.AuthEvent{
		Type:       "session_issued",
		AccountID:  accountID,
		Method:     method,
		Provider:   provider,
		Client:     string(client),
		OccurredAt: s.now().UTC(),
	})
}

// DeleteExpiredCodes removes challenges that expired before the retention
// window.
func (s *Service) DeleteExpiredCodes(ctx context.Context) error {
	n, err := s.otps.DeleteStale(ctx, s.now().Add(-s.cfg.OTP.Retention))
	if err != nil {
		return fmt.Errorf("delete expired codes: %w", err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "expired codes deleted", "count", n)
	}

	return nil
}

func (s *Service) DeleteExpiredTokens(ctx context.Context) error {
	if err := s.tokens.CleanExpired(ctx); err != nil {
		return fmt.Errorf("delete expired refresh tokens: %w", err)
	}

	return nil
}
