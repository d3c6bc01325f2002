package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// SocialIdentity is a verified external identity. It is produced per
// authentication attempt and never cached.
type SocialIdentity struct {
	Provider       string
	ProviderUserID string
	Email          string
	EmailVerified  bool
	FirstName      string
	LastName       string
	PictureURL     string
	RawClaims      map[string]any
}

// SocialPayload is what a client submits to prove a third-party identity.
type SocialPayload struct {
	IDToken           string `json:"idToken"`
	AuthorizationCode string `json:"authorizationCode"`
	RedirectURI       string `json:"redirectUri"`
	CodeVerifier      string `json:"codeVerifier"`
	ClientID          string `json:"clientId"`
	AccessToken       string `json:"accessToken"`
}

type SocialAccountLink struct {
	ID             uuid.UUID      `json:"id"`
	AccountID      uuid.UUID      `json:"accountId"`
	Provider       string         `json:"provider"`
	ProviderUserID string         `json:"providerUserId"`
	Email          string         `json:"email"`
	EmailVerified  bool           `json:"emailVerified"`
	PictureURL     string         `json:"pictureUrl"`
	RawResponse    map[string]any `json:"-"`
	LastLoginAt    time.Time      `json:"lastLoginAt"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type SocialPrecheck struct {
	Provider            string `json:"provider"`
	Email               string `json:"email"`
	EmailVerified       bool   `json:"emailVerified"`
	SocialAccountExists bool   `json:"socialAccountExists"`
	LinkedExistingUser  bool   `json:"linkedExistingUser"`
	UserExists          bool   `json:"userExists"`
	WouldCreateUser     bool   `json:"wouldCreateUser"`
	CanLogin            bool   `json:"canLogin"`
}

type SocialLinkResult struct {
	Provider        string    `json:"provider"`
	SocialAccountID uuid.UUID `json:"socialAccountId"`
	Created         bool      `json:"created"`
}
