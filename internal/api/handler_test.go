package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/identity/internal/api"
	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/mocks"
	"github.com/samandr77/microservices/identity/internal/ratelimit"
	"github.com/samandr77/microservices/identity/internal/service"
)

type tester struct {
	server  *httptest.Server
	svc     *mocks.MockService
	tokens  *mocks.MockTokenValidator
	limiter *mocks.MockRateLimiter
}

func newTester(t *testing.T, trustedProxies ...string) tester {
	t.Helper()

	proxies := make([]netip.Prefix, 0, len(trustedProxies))
	for _, p := range trustedProxies {
		proxies = append(proxies, netip.MustParsePrefix(p))
	}

	ctrl := gomock.NewController(t)

	svc := mocks.NewMockService(ctrl)
	tokens := mocks.NewMockTokenValidator(ctrl)
	limiter := mocks.NewMockRateLimiter(ctrl)

	router := api.NewRouter(api.NewHandler(svc), api.NewMiddleware(tokens, limiter, proxies))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return tester{
		server:  server,
		svc:     svc,
		tokens:  tokens,
		limiter: limiter,
	}
}

func (tt tester) do(t *testing.T, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()

	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, tt.server.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tt.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))

	return v
}

func (tt tester) allowAll() {
	tt.limiter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	resp := tt.do(t, http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}

func TestHandler_RequestCode(t *testing.T) {
	t.Parallel()

	t.Run("channel inferred from phone", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().
			Check(gomock.Any(), ratelimit.PolicyOTPRequest, "127.0.0.1", "phone:+447700900123").
			Return(nil)
		tt.svc.EXPECT().
			RequestCode(gomock.Any(), service.RequestCodeInput{Phone: "+447700900123", Channel: entity.ChannelSMS}).
			Return(entity.ChannelSMS, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"phone": "+447700900123"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[api.RequestCodeResponse](t, resp)
		require.Equal(t, entity.ChannelSMS, body.Channel)
	})

	t.Run("cooldown answers 429 with retry after", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).
			Return(entity.Channel(""), &entity.ThrottledError{Reason: "resend cooldown", RetryAfter: 39500 * time.Millisecond})

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"email": "a@example.com"}, nil)
		require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		require.Equal(t, "40", resp.Header.Get("Retry-After"))

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "throttled", body.Code)
		require.Equal(t, 40, body.RetryAfter)
	})

	t.Run("rate limited before the service", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyOTPRequest, gomock.Any(), "email:a@example.com").
			Return(&entity.RateLimitedError{Scope: string(ratelimit.ScopeOTPRequestIdentity), RetryAfter: 2 * time.Minute})

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"email": " A@Example.com "}, nil)
		require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		require.Equal(t, "120", resp.Header.Get("Retry-After"))

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "rate_limited", body.Code)
	})

	t.Run("limiter store failure lets the request through", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("redis: connection refused"))
		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).Return(entity.ChannelEmail, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"email": "a@example.com"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).
			Return(entity.Channel(""), &entity.DeliveryError{Channel: entity.ChannelSMS, Err: errors.New("twilio: 503")})

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"phone": "+447700900123"}, nil)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "delivery_failed", body.Code)
	})

	t.Run("forwarded ip is the limiter key", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t, "127.0.0.0/8", "10.0.0.0/8")

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyOTPRequest, "203.0.113.7", "203.0.113.7").Return(nil)
		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).
			Return(entity.Channel(""), entity.NewValidationError("email", "email is required for the email channel"))

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{},
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "email", body.Field)
	})

	t.Run("forwarded ip from an untrusted peer is ignored", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyOTPRequest, "127.0.0.1", "127.0.0.1").Return(nil).Times(2)
		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).
			Return(entity.Channel(""), entity.NewValidationError("email", "email is required for the email channel")).Times(2)

		for _, spoofed := range []string{"198.51.100.1", "198.51.100.2"} {
			resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{},
				map[string]string{"X-Forwarded-For": spoofed, "X-Real-IP": spoofed})
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		}
	})

	t.Run("spoofed hops left of a trusted proxy are skipped", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t, "127.0.0.1/32")

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyOTPRequest, "203.0.113.9", "203.0.113.9").Return(nil)
		tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).
			Return(entity.Channel(""), entity.NewValidationError("email", "email is required for the email channel"))

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{},
			map[string]string{"X-Forwarded-For": "198.51.100.1, 203.0.113.9"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_VerifyCode(t *testing.T) {
	t.Parallel()

	t.Run("mobile sign-in", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		device := &entity.DeviceInfo{Platform: "iOS", NotificationToken: "apns-1"}
		accountID := uuid.Must(uuid.NewV4())

		tt.svc.EXPECT().VerifyCode(gomock.Any(), service.VerifyCodeInput{
			Email:  "a@example.com",
			Code:   "123456",
			Client: entity.ClientMobile,
			Device: device,
		}).Return(entity.SessionResponse{
			User:             entity.SessionUser{ID: accountID, Email: "a@example.com"},
			Tokens:           &entity.Tokens{Access: "access", Refresh: "refresh"},
			DeviceRegistered: true,
		}, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/verify", api.VerifyCodeRequest{
			Email:  "a@example.com",
			Code:   " 123456 ",
			Client: "mobile",
			Device: device,
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[entity.SessionResponse](t, resp)
		require.Equal(t, accountID, body.User.ID)
		require.True(t, body.DeviceRegistered)
		require.Equal(t, "refresh", body.Tokens.Refresh)
	})

	t.Run("unknown client", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/verify",
			api.VerifyCodeRequest{Email: "a@example.com", Code: "123456", Client: "tv"}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "client", body.Field)
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		resp := tt.do(t, http.MethodPost, "/api/v1/otp/verify", api.VerifyCodeRequest{Email: "a@example.com"}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "invalid code",
			err:        fmt.Errorf("verify: %w", entity.ErrInvalidCode),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "invalid_code",
		},
		{
			name:       "attempts exhausted",
			err:        &entity.ThrottledError{Reason: "too many attempts"},
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "throttled",
		},
		{
			name:       "device missing",
			err:        entity.NewValidationError("device", "device info is required for mobile clients"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
		},
		{
			name:       "misconfigured",
			err:        &entity.ConfigurationError{Setting: "JWT_PRIVATE_KEY", Reason: "empty"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "configuration_error",
		},
		{
			name:       "unexpected",
			err:        errors.New("pool closed"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tt := newTester(t)
			tt.allowAll()

			tt.svc.EXPECT().VerifyCode(gomock.Any(), gomock.Any()).Return(entity.SessionResponse{}, tc.err)

			resp := tt.do(t, http.MethodPost, "/api/v1/otp/verify",
				api.VerifyCodeRequest{Email: "a@example.com", Code: "123456"}, nil)
			require.Equal(t, tc.wantStatus, resp.StatusCode)

			body := decode[api.ResponseError](t, resp)
			require.Equal(t, tc.wantCode, body.Code)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyLogin, gomock.Any(), "login:jdoe").Return(nil)
	tt.svc.EXPECT().LoginWithPassword(gomock.Any(), service.PasswordLoginInput{
		Login:    "JDoe",
		Password: "secret",
		Client:   entity.ClientWeb,
	}).Return(entity.SessionResponse{}, entity.ErrInvalidCredentials)

	resp := tt.do(t, http.MethodPost, "/api/v1/login", api.LoginRequest{Login: "JDoe", Password: "secret"}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decode[api.ResponseError](t, resp)
	require.Equal(t, "invalid_credentials", body.Code)
}

func TestHandler_SocialLogin(t *testing.T) {
	t.Parallel()

	t.Run("provider from path", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicySocialLogin, gomock.Any(), gomock.Any()).Return(nil)

		created := true
		tt.svc.EXPECT().SocialLogin(gomock.Any(), service.SocialLoginInput{
			Provider:      "google",
			Payload:       entity.SocialPayload{IDToken: "id-token"},
			Client:        entity.ClientWeb,
			TermsAccepted: true,
		}).Return(entity.SessionResponse{SocialProvider: "google", UserCreated: &created}, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/login",
			`{"idToken":"id-token","client":"web","termsAndConditionsAccepted":true}`, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[entity.SessionResponse](t, resp)
		require.Equal(t, "google", body.SocialProvider)
		require.True(t, *body.UserCreated)
	})

	t.Run("social error keeps its status and code", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		tt.svc.EXPECT().SocialLogin(gomock.Any(), gomock.Any()).
			Return(entity.SessionResponse{}, entity.ErrSocialAlreadyLinked)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/apple/login", `{"authorizationCode":"c"}`, nil)
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "social_already_linked", body.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/login", `{"idToken":`, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "social_bad_request", body.Code)
	})
}

func TestHandler_SocialPrecheck(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicySocialPrecheck, gomock.Any(), gomock.Any()).Return(nil)
	tt.svc.EXPECT().SocialPrecheck(gomock.Any(), "facebook", entity.SocialPayload{AccessToken: "fb"}).
		Return(entity.SocialPrecheck{Provider: "facebook", WouldCreateUser: true, CanLogin: true}, nil)

	resp := tt.do(t, http.MethodPost, "/api/v1/social/facebook/precheck", entity.SocialPayload{AccessToken: "fb"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[entity.SocialPrecheck](t, resp)
	require.True(t, body.WouldCreateUser)
}

func TestHandler_LinkSocial(t *testing.T) {
	t.Parallel()

	accountID := uuid.Must(uuid.NewV4())
	bearer := map[string]string{"Authorization": "Bearer access-token"}

	t.Run("no bearer token", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/link", entity.SocialPayload{IDToken: "t"}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("expired bearer token", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.tokens.EXPECT().ValidateToken(gomock.Any(), "access-token").
			Return(entity.SessionClaims{}, entity.ErrTokenExpired)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/link", entity.SocialPayload{IDToken: "t"}, bearer)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "token_expired", body.Code)
	})

	t.Run("created link", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.tokens.EXPECT().ValidateToken(gomock.Any(), "access-token").
			Return(entity.SessionClaims{AccountID: accountID}, nil)
		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicySocialLogin, gomock.Any(), "user:"+accountID.String()).
			Return(nil)
		tt.svc.EXPECT().LinkSocialAccount(gomock.Any(), accountID, "google", entity.SocialPayload{IDToken: "t"}).
			Return(entity.SocialLinkResult{Provider: "google", Created: true}, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/link", entity.SocialPayload{IDToken: "t"}, bearer)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("refreshed link", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		tt.tokens.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).
			Return(entity.SessionClaims{AccountID: accountID}, nil)
		tt.svc.EXPECT().LinkSocialAccount(gomock.Any(), accountID, "google", gomock.Any()).
			Return(entity.SocialLinkResult{Provider: "google"}, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/social/google/link", entity.SocialPayload{IDToken: "t"}, bearer)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHandler_UnlinkSocial(t *testing.T) {
	t.Parallel()

	accountID := uuid.Must(uuid.NewV4())
	bearer := map[string]string{"Authorization": "Bearer access-token"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unlinked", wantStatus: http.StatusOK},
		{name: "no link", err: entity.ErrSocialNotFound, wantStatus: http.StatusNotFound},
		{name: "unknown provider", err: entity.ErrSocialProviderNotSupported, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tt := newTester(t)

			tt.tokens.EXPECT().ValidateToken(gomock.Any(), "access-token").
				Return(entity.SessionClaims{AccountID: accountID}, nil)
			tt.svc.EXPECT().UnlinkSocialAccount(gomock.Any(), accountID, "google").Return(tc.err)

			resp := tt.do(t, http.MethodDelete, "/api/v1/social/google", nil, bearer)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_ListSocial(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	accountID := uuid.Must(uuid.NewV4())

	tt.tokens.EXPECT().ValidateToken(gomock.Any(), "access-token").
		Return(entity.SessionClaims{AccountID: accountID}, nil)
	tt.svc.EXPECT().ListSocialAccounts(gomock.Any(), accountID).Return(nil, nil)

	resp := tt.do(t, http.MethodGet, "/api/v1/social", nil, map[string]string{"Authorization": "Bearer access-token"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"accounts":[]}`, string(raw))
}

func TestHandler_Providers(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	tt.svc.EXPECT().Providers().Return([]string{"apple", "google"})

	resp := tt.do(t, http.MethodGet, "/api/v1/social/providers", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.ProvidersResponse](t, resp)
	require.Equal(t, []string{"apple", "google"}, body.Providers)
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Parallel()

	t.Run("rotated", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		tt.limiter.EXPECT().Check(gomock.Any(), ratelimit.PolicyTokenRefresh, gomock.Any(), gomock.Any()).Return(nil)
		tt.svc.EXPECT().RefreshToken(gomock.Any(), "old").
			Return(&entity.Tokens{Access: "new-access", Refresh: "new-refresh"}, nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/token/refresh", api.RefreshTokenRequest{Refresh: "old"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[entity.Tokens](t, resp)
		require.Equal(t, "new-refresh", body.Refresh)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		resp := tt.do(t, http.MethodPost, "/api/v1/token/refresh", api.RefreshTokenRequest{}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("already used", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)
		tt.allowAll()

		tt.svc.EXPECT().RefreshToken(gomock.Any(), "used").Return(nil, entity.ErrTokenNotFound)

		resp := tt.do(t, http.MethodPost, "/api/v1/token/refresh", api.RefreshTokenRequest{Refresh: "used"}, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decode[api.ResponseError](t, resp)
		require.Equal(t, "token_invalid", body.Code)
	})
}

func TestHandler_ValidateToken(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	accountID := uuid.Must(uuid.NewV4())
	profileID := uuid.Must(uuid.NewV4())

	tt.svc.EXPECT().ValidateToken(gomock.Any(), "access").
		Return(entity.SessionClaims{AccountID: accountID, ProfileID: profileID, Role: "USER"}, nil)

	resp := tt.do(t, http.MethodPost, "/api/v1/token/validate", api.ValidateTokenRequest{AccessToken: "access"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[api.ValidateTokenResponse](t, resp)
	require.Equal(t, accountID.String(), body.AccountID)
	require.Equal(t, profileID.String(), body.ProfileID)
	require.Equal(t, "USER", body.Role)
}

func TestHandler_DestroyToken(t *testing.T) {
	t.Parallel()

	t.Run("signed in", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		accountID := uuid.Must(uuid.NewV4())

		tt.tokens.EXPECT().ValidateToken(gomock.Any(), "access").Return(entity.SessionClaims{AccountID: accountID}, nil)
		tt.svc.EXPECT().RevokeTokens(gomock.Any(), accountID).Return(nil)

		resp := tt.do(t, http.MethodPost, "/api/v1/token/destroy", nil, map[string]string{"Authorization": "Bearer access"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("internal with bad id", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		resp := tt.do(t, http.MethodPost, "/internal/api/v1/token/destroy",
			api.DestroyTokenInternalRequest{AccountID: "nope"}, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("internal", func(t *testing.T) {
		t.Parallel()

		tt := newTester(t)

		accountID := uuid.Must(uuid.NewV4())
		tt.svc.EXPECT().RevokeTokens(gomock.Any(), accountID).Return(nil)

		resp := tt.do(t, http.MethodPost, "/internal/api/v1/token/destroy",
			api.DestroyTokenInternalRequest{AccountID: accountID.String()}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestMiddleware_Cors(t *testing.T) {
	t.Parallel()

	tt := newTester(t)

	resp := tt.do(t, http.MethodOptions, "/api/v1/otp/request", nil, map[string]string{"Origin": "https://app.example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, resp.Header.Get("Access-Control-Expose-Headers"), "Retry-After")
}

func TestMiddleware_Recover(t *testing.T) {
	t.Parallel()

	tt := newTester(t)
	tt.allowAll()

	tt.svc.EXPECT().RequestCode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ service.RequestCodeInput) (entity.Channel, error) {
			panic("boom")
		})

	resp := tt.do(t, http.MethodPost, "/api/v1/otp/request", map[string]string{"email": "a@example.com"}, nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
