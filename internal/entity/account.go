package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

// UnusablePasswordPrefix marks password hashes that can never match.
const UnusablePasswordPrefix = "!"

const DefaultProfileRole = "USER"

type Account struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"-"`
	IsActive        bool       `json:"isActive"`
	IsVerified      bool       `json:"isVerified"`
	TermsAcceptedAt *time.Time `json:"termsAcceptedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"-"`
}

func (a Account) HasUsablePassword() bool {
	return a.PasswordHash != "" && !strings.HasPrefix(a.PasswordHash, UnusablePasswordPrefix)
}

type Profile struct {
	ID                 uuid.UUID `json:"id"`
	AccountID          uuid.UUID `json:"accountId"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Role               string    `json:"role"`
	IsDefault          bool      `json:"isDefault"`
	PictureName        string    `json:"pictureName,omitempty"`
	PictureContentType string    `json:"-"`
	Picture            []byte    `json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CompletionRequired reports whether the profile still lacks a first or last name.
func (p Profile) CompletionRequired() bool {
	return strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == ""
}

type ProfileFields struct {
	FirstName string
	LastName  string
	Role      string
}
