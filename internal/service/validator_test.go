package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/service"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		errFn require.ErrorAssertionFunc
	}{
		{"Valid email", "user@example.com", require.NoError},
		{"Valid email with plus", "user+tag@example.co.uk", require.NoError},
		{"Valid email with unicode domain", "test@пример.рф", require.NoError},
		{"Invalid: no domain zone", "abc@mail", require.Error},
		{"Invalid: double @ symbol", "user@@example.com", require.Error},
		{"Invalid: domain starts with dot", "user@.com", require.Error},
		{"Invalid: two consecutive dots", "user@example..com", require.Error},
		{"Invalid: exceeds length limit", strings.Repeat("x", service.EmailMaxLen) + "@example.com", require.Error},
		{"Invalid: empty email", "", require.Error},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			test.errFn(t, service.ValidateEmail(test.email))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		errFn    require.ErrorAssertionFunc
	}{
		{"Valid email without changes", "user@example.com", "user@example.com", require.NoError},
		{"Email with spaces at start/end", "  user@example.com  ", "user@example.com", require.NoError},
		{"Email with uppercase", "User@Example.COM", "user@example.com", require.NoError},
		{"Email with angle brackets", "<user@example.com>", "user@example.com", require.NoError},
		{"Email with inner spaces", "user  @  example  .  com", "user@example.com", require.NoError},
		{"Invalid email after normalization", "invalid-email", "", require.Error},
		{"Empty email", "", "", require.Error},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result, err := service.NormalizeEmail(test.input)
			test.errFn(t, err)

			if err == nil {
				require.Equal(t, test.expected, result)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		cc       string
		expected string
		wantErr  error
	}{
		{"International", "+44 7700 900123", "", "+447700900123", nil},
		{"Double zero prefix", "0044-7700-900123", "", "+447700900123", nil},
		{"National with trunk zero", "(07700) 900123", "44", "+447700900123", nil},
		{"National with plus country code", "7700900123", "+44", "+447700900123", nil},
		{"National without country code", "07700900123", "", "", entity.ErrPhoneNoCountryCode},
		{"Too short", "+4412", "", "", entity.ErrPhoneInvalidFormat},
		{"Too long", "+1234567890123456", "", "", entity.ErrPhoneInvalidFormat},
		{"Letters", "+44abc7700900", "", "", entity.ErrPhoneInvalidFormat},
		{"Empty", "  ", "44", "", entity.ErrPhoneInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := service.NormalizePhone(tt.input, tt.cc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}
