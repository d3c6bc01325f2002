package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/samandr77/microservices/identity/internal/entity"
)

const errInternalText = "Internal error"

type ResponseError struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Field      string `json:"field,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func sendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	sendResponseErr(ctx, w, code, err, ResponseError{Message: msg})
}

func sendResponseErr(ctx context.Context, w http.ResponseWriter, code int, err error, resp ResponseError) {
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, resp.Message, "error", err.Error(), "http_code", code)
	} else {
		slog.WarnContext(ctx, resp.Message, "error", err.Error(), "http_code", code)
	}

	if resp.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(resp.RetryAfter))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(resp)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

func sendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}
}

// handleErr maps a service error onto the HTTP response. Unknown errors are
// answered with 500 and logged.
func handleErr(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErr *entity.ValidationError
		throttledErr  *entity.ThrottledError
		rateErr       *entity.RateLimitedError
		socialErr     *entity.SocialAuthError
		deliveryErr   *entity.DeliveryError
		externalErr   *entity.ExternalServiceError
		configErr     *entity.ConfigurationError
	)

	switch {
	case errors.As(err, &validationErr):
		sendResponseErr(ctx, w, http.StatusBadRequest, err, ResponseError{
			Message: validationErr.Message,
			Code:    "validation_error",
			Field:   validationErr.Field,
		})
	case errors.As(err, &rateErr):
		sendResponseErr(ctx, w, http.StatusTooManyRequests, err, ResponseError{
			Message:    "Too many requests, try again later",
			Code:       "rate_limited",
			RetryAfter: retryAfterSeconds(rateErr.RetryAfter),
		})
	case errors.As(err, &throttledErr):
		sendResponseErr(ctx, w, http.StatusTooManyRequests, err, ResponseError{
			Message:    throttledText(throttledErr),
			Code:       "throttled",
			RetryAfter: retryAfterSeconds(throttledErr.RetryAfter),
		})
	case errors.As(err, &socialErr):
		sendResponseErr(ctx, w, socialErr.Status, err, ResponseError{
			Message: socialErr.Detail,
			Code:    socialErr.Code,
		})
	case errors.Is(err, entity.ErrInvalidCode):
		sendResponseErr(ctx, w, http.StatusUnauthorized, err, ResponseError{
			Message: "Invalid or expired code",
			Code:    "invalid_code",
		})
	case errors.Is(err, entity.ErrInvalidCredentials):
		sendResponseErr(ctx, w, http.StatusUnauthorized, err, ResponseError{
			Message: "Invalid login or password",
			Code:    "invalid_credentials",
		})
	case errors.Is(err, entity.ErrTokenExpired):
		sendResponseErr(ctx, w, http.StatusUnauthorized, err, ResponseError{
			Message: "Token expired",
			Code:    "token_expired",
		})
	case errors.Is(err, entity.ErrTokenInvalid), errors.Is(err, entity.ErrTokenNotFound),
		errors.Is(err, entity.ErrUnauthorized):
		sendResponseErr(ctx, w, http.StatusUnauthorized, err, ResponseError{
			Message: "Invalid token",
			Code:    "token_invalid",
		})
	case errors.As(err, &deliveryErr):
		sendResponseErr(ctx, w, http.StatusServiceUnavailable, err, ResponseError{
			Message: fmt.Sprintf("Could not send the code by %s, try again later", deliveryErr.Channel),
			Code:    "delivery_failed",
		})
	case errors.As(err, &externalErr):
		sendResponseErr(ctx, w, http.StatusServiceUnavailable, err, ResponseError{
			Message: "Service temporarily unavailable, try again later",
			Code:    "service_unavailable",
		})
	case errors.As(err, &configErr):
		sendResponseErr(ctx, w, http.StatusInternalServerError, err, ResponseError{
			Message: errInternalText,
			Code:    "configuration_error",
		})
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrAlreadyExists):
		sendResponseErr(ctx, w, http.StatusConflict, err, ResponseError{Message: "Conflict", Code: "conflict"})
	case errors.Is(err, entity.ErrNotFound):
		sendResponseErr(ctx, w, http.StatusNotFound, err, ResponseError{Message: "Not found", Code: "not_found"})
	default:
		sendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
	}
}

func throttledText(err *entity.ThrottledError) string {
	switch err.Reason {
	case "too many attempts":
		return "Too many attempts, request a new code"
	default:
		return "A code was sent recently, wait before requesting another one"
	}
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(math.Ceil(d.Seconds()))
}
