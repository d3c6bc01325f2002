package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const (
	usernameBaseMaxLen = 140
	usernameMaxLen     = 150

	unusablePasswordLen = 40
	syntheticDomain     = "otp.local"
)

const randomAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func normalizeUsername(base string) string {
	value := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(base)), " ", "_")
	if value == "" {
		value = "user"
	}

	return truncateRunes(value, usernameBaseMaxLen)
}

// truncateRunes cuts s to at most n characters without splitting a rune.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// usernameBase prefers the email local-part and falls back to the external
// subject.
func usernameBase(email, provider, subject string) string {
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		return normalizeUsername(local)
	}

	if provider != "" {
		return normalizeUsername(provider + "_" + subject)
	}

	return normalizeUsername(subject)
}

func (s *Service) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base

	for counter := 2; ; counter++ {
		exists, err := s.accounts.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username: %w", err)
		}

		if !exists {
			return candidate, nil
		}

		suffix := "_" + strconv.Itoa(counter)
		candidate = truncateRunes(base, max(1, usernameMaxLen-len(suffix))) + suffix
	}
}

func randomString(n int) (string, error) {
	limit := big.NewInt(int64(len(randomAlphabet)))
	b := make([]byte, n)

	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}

		b[i] = randomAlphabet[idx.Int64()]
	}

	return string(b), nil
}

// unusablePassword never parses as a bcrypt hash, so no password matches it.
func unusablePassword() (string, error) {
	r, err := randomString(unusablePasswordLen)
	if err != nil {
		return "", fmt.Errorf("generate unusable password: %w", err)
	}

	return entity.UnusablePasswordPrefix + r, nil
}

// syntheticEmail keeps email as the single identity key for phone-only
// accounts.
func syntheticEmail(phone string) string {
	return "phone_" + strings.TrimPrefix(phone, "+") + "@" + syntheticDomain
}
