package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type Tokens struct {
	Access          string        `json:"access"`
	Refresh         string        `json:"refresh"`
	RefreshTokenTTL time.Duration `json:"-"`
}

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type SessionClaims struct {
	AccountID uuid.UUID `json:"account_id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Role      string    `json:"role"`
	TokenType string    `json:"typ"`
	jwt.RegisteredClaims
}

type SessionUser struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Username   string    `json:"username"`
	IsVerified bool      `json:"isVerified"`
}

// SessionResponse is the client-facing result of any authentication path.
type SessionResponse struct {
	User                      SessionUser `json:"user"`
	ActiveProfile             Profile     `json:"activeProfile"`
	Tokens                    *Tokens     `json:"tokens,omitempty"`
	TermsAcceptedAt           *time.Time  `json:"termsAcceptedAt,omitempty"`
	ProfileCompletionRequired bool        `json:"profileCompletionRequired"`
	DeviceRegistered          bool        `json:"deviceRegistered,omitempty"`

	SocialProvider     string     `json:"socialProvider,omitempty"`
	UserCreated        *bool      `json:"userCreated,omitempty"`
	LinkedExistingUser *bool      `json:"linkedExistingUser,omitempty"`
	SocialAccountID    *uuid.UUID `json:"socialAccountId,omitempty"`
}

// AuthEvent is published after every issued session.
type AuthEvent struct {
	Type       string    `json:"type"`
	AccountID  uuid.UUID `json:"accountId"`
	Method     string    `json:"method"`
	Provider   string    `json:"provider,omitempty"`
	Client     string    `json:"client"`
	OccurredAt time.Time `json:"occurredAt"`
}
