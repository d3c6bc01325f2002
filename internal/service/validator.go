package service

import (
	"regexp"
	"strings"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const EmailMaxLen = 255

var (
	emailRegexp      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[\p{L}0-9.-]+\.[\p{L}]{2,}$`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	phoneRegexp      = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
	phoneSeparators  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "", "\t", "")
	emailDecorations = strings.NewReplacer("(", "", ")", "", "[", "", "]", "", "<", "", ">", "")
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen {
		return entity.ErrEmailInvalidLen
	}

	if !emailRegexp.MatchString(email) {
		return entity.ErrEmailInvalidFormat
	}

	if strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func NormalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	normalized = emailDecorations.Replace(normalized)
	normalized = whitespaceRegexp.ReplaceAllString(normalized, "")

	if err := ValidateEmail(normalized); err != nil {
		return "", err
	}

	return normalized, nil
}

// NormalizePhone returns the E.164 form of raw. Numbers without an
// international prefix get defaultCountryCode; when it is empty such numbers
// are rejected.
func NormalizePhone(raw, defaultCountryCode string) (string, error) {
	phone := phoneSeparators.Replace(strings.TrimSpace(raw))
	if phone == "" {
		return "", entity.ErrPhoneInvalidFormat
	}

	switch {
	case strings.HasPrefix(phone, "+"):
	case strings.HasPrefix(phone, "00"):
		phone = "+" + phone[2:]
	default:
		cc := strings.TrimPrefix(strings.TrimSpace(defaultCountryCode), "+")
		if cc == "" {
			return "", entity.ErrPhoneNoCountryCode
		}

		phone = "+" + cc + strings.TrimPrefix(phone, "0")
	}

	if !phoneRegexp.MatchString(phone) {
		return "", entity.ErrPhoneInvalidFormat
	}

	return phone, nil
}

func fieldError(field string, err error) error {
	return entity.NewValidationError(field, err.Error())
}
