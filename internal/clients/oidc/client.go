package oidc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/samandr77/microservices/identity/internal/clients/retry"
	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
)

var allowedAlgorithms = []string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()}

// Provider verifies OpenID Connect identities of one issuer.
type Provider struct {
	name   string
	cfg    config.OIDCProviderConfig
	client *http.Client
	keys   *KeySet
}

func NewProvider(name string, cfg config.OIDCProviderConfig) *Provider {
	keysClient := retry.NewClient(cfg.JWKSTimeout, cfg.RetryAttempts)

	return &Provider{
		name:   name,
		cfg:    cfg,
		client: retry.NewClient(cfg.ExchangeTimeout, cfg.RetryAttempts),
		keys:   NewKeySet(cfg.Issuer, cfg.JWKSURL, keysClient, cfg.JWKSCacheTTL, cfg.JWKSCacheSize),
	}
}

func (p *Provider) Name() string {
	return p.name
}

// Authenticate accepts an id token directly or exchanges an authorization
// code for one, then verifies it against the provider key set.
func (p *Provider) Authenticate(ctx context.Context, payload entity.SocialPayload) (entity.SocialIdentity, error) {
	idToken := strings.TrimSpace(payload.IDToken)

	if idToken == "" && strings.TrimSpace(payload.AuthorizationCode) != "" {
		var err error

		idToken, err = p.exchange(ctx, payload)
		if err != nil {
			return entity.SocialIdentity{}, err
		}
	}

	if idToken == "" {
		return entity.SocialIdentity{}, entity.ErrSocialBadRequest.WithDetail("idToken or authorizationCode is required for social login")
	}

	if p.cfg.Issuer == "" || p.cfg.JWKSURL == "" {
		return entity.SocialIdentity{}, entity.ErrSocialConfig.WithDetail("missing issuer or JWKS configuration for provider " + p.name)
	}

	if len(p.cfg.ClientIDs) == 0 {
		return entity.SocialIdentity{}, entity.ErrSocialConfig.WithDetail("missing client ids for provider " + p.name)
	}

	claims, err := p.verify(ctx, idToken)
	if err != nil {
		var extErr *entity.ExternalServiceError
		if errors.As(err, &extErr) {
			slog.ErrorContext(ctx, "OIDC key set unavailable", "provider", p.name, "error", extErr.Err)
			return entity.SocialIdentity{}, extErr
		}

		slog.InfoContext(ctx, "OIDC token rejected", "provider", p.name, "reason", err.Error())

		return entity.SocialIdentity{}, entity.ErrSocialInvalidToken
	}

	return identityFromClaims(p.name, claims)
}

func (p *Provider) exchange(ctx context.Context, payload entity.SocialPayload) (string, error) {
	if p.cfg.TokenURL == "" {
		return "", entity.ErrSocialConfig.WithDetail("missing token url for provider " + p.name)
	}

	clientID := strings.TrimSpace(payload.ClientID)
	if clientID == "" && len(p.cfg.ClientIDs) > 0 {
		clientID = p.cfg.ClientIDs[0]
	}

	if clientID == "" {
		return "", entity.ErrSocialConfig.WithDetail("missing client id for provider " + p.name)
	}

	oauthCfg := oauth2.Config{
		ClientID:     clientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  payload.RedirectURI,
		Endpoint: oauth2.Endpoint{
			TokenURL:  p.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	var opts []oauth2.AuthCodeOption
	if payload.CodeVerifier != "" {
		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", payload.CodeVerifier))
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	tok, err := oauthCfg.Exchange(ctx, payload.AuthorizationCode, opts...)
	if err != nil {
		return "", classifyExchangeError(ctx, p.name, err)
	}

	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		return "", entity.ErrSocialInvalidToken.WithDetail("social provider response did not include id_token")
	}

	return idToken, nil
}

func classifyExchangeError(ctx context.Context, provider string, err error) error {
	var rErr *oauth2.RetrieveError
	if !errors.As(err, &rErr) {
		slog.WarnContext(ctx, "Authorization code exchange failed", "provider", provider, "error", err)
		return entity.ErrSocialExchangeFailed
	}

	status := 0
	if rErr.Response != nil {
		status = rErr.Response.StatusCode
	}

	slog.InfoContext(ctx, "Authorization code exchange rejected",
		"provider", provider, "provider_error", rErr.ErrorCode, "status", status)

	switch rErr.ErrorCode {
	case "invalid_grant":
		return entity.ErrSocialInvalidGrant
	case "invalid_client":
		return entity.ErrSocialInvalidClient
	default:
		return entity.ErrSocialExchangeFailed
	}
}

func (p *Provider) verify(ctx context.Context, raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return p.keys.Key(ctx, kid)
	},
		jwt.WithValidMethods(allowedAlgorithms),
		jwt.WithIssuer(p.cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	aud, err := claims.GetAudience()
	if err != nil {
		return nil, err
	}

	if !slices.ContainsFunc(aud, func(a string) bool { return slices.Contains(p.cfg.ClientIDs, a) }) {
		return nil, fmt.Errorf("audience %v not accepted", aud)
	}

	return claims, nil
}

func identityFromClaims(provider string, claims jwt.MapClaims) (entity.SocialIdentity, error) {
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return entity.SocialIdentity{}, entity.ErrSocialInvalidToken.WithDetail("OIDC token missing 'sub' claim")
	}

	return entity.SocialIdentity{
		Provider:       provider,
		ProviderUserID: sub,
		Email:          stringClaim(claims, "email"),
		EmailVerified:  boolClaim(claims, "email_verified"),
		FirstName:      stringClaim(claims, "given_name"),
		LastName:       stringClaim(claims, "family_name"),
		PictureURL:     stringClaim(claims, "picture"),
		RawClaims:      claims,
	}, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}

// boolClaim accepts both JSON booleans and the "true" string some issuers send.
func boolClaim(claims jwt.MapClaims, name string) bool {
	switch v := claims[name].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}
