package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/identity/docs" // Swagger documentation
	"github.com/samandr77/microservices/identity/internal/ratelimit"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /api/health", h.Health)

	router.Handle("POST /api/v1/otp/request", limited(h.RequestCode, mw.RateLimit(ratelimit.PolicyOTPRequest)))
	router.Handle("POST /api/v1/otp/verify", limited(h.VerifyCode, mw.RateLimit(ratelimit.PolicyOTPVerify)))
	router.Handle("POST /api/v1/login", limited(h.Login, mw.RateLimit(ratelimit.PolicyLogin)))

	router.HandleFunc("GET /api/v1/social/providers", h.Providers)
	router.Handle("POST /api/v1/social/{provider}/login", limited(h.SocialLogin, mw.RateLimit(ratelimit.PolicySocialLogin)))
	router.Handle("POST /api/v1/social/{provider}/precheck", limited(h.SocialPrecheck, mw.RateLimit(ratelimit.PolicySocialPrecheck)))
	router.Handle("POST /api/v1/social/{provider}/link", limited(h.LinkSocial, mw.Auth, mw.RateLimit(ratelimit.PolicySocialLogin)))
	router.Handle("DELETE /api/v1/social/{provider}", limited(h.UnlinkSocial, mw.Auth))
	router.Handle("GET /api/v1/social", limited(h.ListSocial, mw.Auth))

	router.Handle("POST /api/v1/token/refresh", limited(h.RefreshToken, mw.RateLimit(ratelimit.PolicyTokenRefresh)))
	router.HandleFunc("POST /api/v1/token/validate", h.ValidateToken)
	router.Handle("POST /api/v1/token/destroy", limited(h.DestroyToken, mw.Auth))

	router.HandleFunc("POST /internal/api/v1/token/destroy", h.DestroyTokenInternal)

	router.HandleFunc("/api/swagger/", httpSwagger.WrapHandler)

	handler := use(router, mw.Recover, mw.Cors, mw.WithIP, mw.WithDeviceID, mw.Log)

	return handler
}

// limited wraps a single route with its own middlewares.
func limited(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	return use(h, mws...)
}

func use(handler http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	return handler
}
