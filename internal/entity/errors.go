package entity

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
	ErrUnauthorized  = errors.New("unauthorized")
)

// ErrInvalidCode is returned for any OTP verification failure that must not
// reveal its cause: missing, expired, used or mismatched challenge.
var ErrInvalidCode = errors.New("invalid or expired code")

var ErrInvalidCredentials = errors.New("invalid credentials")

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenNotFound = errors.New("token not found")
)

var (
	ErrEmailInvalidLen    = errors.New("email length exceeds 255 characters")
	ErrEmailInvalidFormat = errors.New("incorrect email format")
	ErrPhoneInvalidFormat = errors.New("incorrect phone format")
	ErrPhoneNoCountryCode = errors.New("phone number must include a country code")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ThrottledError is a business-rule refusal: resend cooldown or exhausted
// verification attempts.
type ThrottledError struct {
	Reason     string
	RetryAfter time.Duration
}

func (e *ThrottledError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("throttled: %s, retry after %s", e.Reason, e.RetryAfter)
	}

	return "throttled: " + e.Reason
}

// RateLimitedError means an IP or identity window was exceeded.
type RateLimitedError struct {
	Scope      string
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limit exceeded for scope %s", e.Scope)
}

type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

type DeliveryError struct {
	Channel Channel
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s delivery failed: %s", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s unavailable: %s", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// SocialAuthError carries a machine code and an HTTP status. Two values match
// with errors.Is when their codes are equal.
type SocialAuthError struct {
	Code   string
	Status int
	Detail string
}

func (e *SocialAuthError) Error() string {
	return e.Code + ": " + e.Detail
}

func (e *SocialAuthError) Is(target error) bool {
	t, ok := target.(*SocialAuthError)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

// WithDetail returns a copy with the same code and status.
func (e *SocialAuthError) WithDetail(detail string) *SocialAuthError {
	return &SocialAuthError{Code: e.Code, Status: e.Status, Detail: detail}
}

var (
	ErrSocialBadRequest = &SocialAuthError{
		Code: "social_bad_request", Status: http.StatusBadRequest,
		Detail: "malformed social login request",
	}
	ErrSocialConfig = &SocialAuthError{
		Code: "social_config_error", Status: http.StatusInternalServerError,
		Detail: "social provider is misconfigured",
	}
	ErrSocialInvalidToken = &SocialAuthError{
		Code: "social_invalid_token", Status: http.StatusUnauthorized,
		Detail: "social token is invalid or expired",
	}
	ErrSocialInvalidGrant = &SocialAuthError{
		Code: "social_invalid_grant", Status: http.StatusUnauthorized,
		Detail: "authorization code is invalid, expired, already used, or redirect uri mismatched",
	}
	ErrSocialInvalidClient = &SocialAuthError{
		Code: "social_invalid_client", Status: http.StatusUnauthorized,
		Detail: "social provider client credentials are invalid",
	}
	ErrSocialExchangeFailed = &SocialAuthError{
		Code: "social_token_exchange_failed", Status: http.StatusUnauthorized,
		Detail: "could not exchange authorization code with social provider",
	}
	ErrSocialEmailNotVerified = &SocialAuthError{
		Code: "social_email_not_verified", Status: http.StatusBadRequest,
		Detail: "social provider did not return a verified email",
	}
	ErrSocialEmailMissing = &SocialAuthError{
		Code: "social_email_missing", Status: http.StatusBadRequest,
		Detail: "social provider did not return an email",
	}
	ErrTermsRequired = &SocialAuthError{
		Code: "terms_required", Status: http.StatusBadRequest,
		Detail: "terms and conditions must be accepted",
	}
	ErrSocialNotLinked = &SocialAuthError{
		Code: "social_account_not_linked", Status: http.StatusBadRequest,
		Detail: "no account is linked for this social provider",
	}
	ErrSocialAlreadyLinked = &SocialAuthError{
		Code: "social_already_linked", Status: http.StatusConflict,
		Detail: "this social account is already linked to another user",
	}
	ErrSocialNotFound = &SocialAuthError{
		Code: "social_not_found", Status: http.StatusNotFound,
		Detail: "no linked social account found for this provider",
	}
	ErrSocialProviderNotSupported = &SocialAuthError{
		Code: "social_provider_not_supported", Status: http.StatusBadRequest,
		Detail: "social provider is not supported",
	}
)
