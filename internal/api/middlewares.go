package api

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // G501: MD5 used for non-cryptographic device fingerprinting
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/internal/ratelimit"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

const maxBodyBytes = 1 << 20

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks -typed

type TokenValidator interface {
	ValidateToken(ctx context.Context, accessToken string) (entity.SessionClaims, error)
}

type RateLimiter interface {
	Check(ctx context.Context, p ratelimit.Policy, ip, identity string) error
}

type Middleware struct {
	tokens  TokenValidator
	limiter RateLimiter
	proxies []netip.Prefix
}

// NewMiddleware builds the middleware set. Forwarding headers are honored
// only for requests whose peer address is inside one of trustedProxies.
func NewMiddleware(tokens TokenValidator, limiter RateLimiter, trustedProxies []netip.Prefix) *Middleware {
	return &Middleware{
		tokens:  tokens,
		limiter: limiter,
		proxies: trustedProxies,
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Service-Name, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Retry-After, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		w.Header().Set("X-Request-Id", requestID)

		ctx := logger.SetRequestID(r.Context(), requestID)

		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetUserAgent(ctx, r.UserAgent())
		ctx = logger.SetLogType(ctx, "webrequest")

		callerService := r.Header.Get("X-Service-Name")
		if callerService == "" {
			callerService = "unknown"
		}

		ctx = logger.SetCallerService(ctx, callerService)

		ip := entity.IPFromCtx(ctx)
		ctx = logger.SetIP(ctx, ip)

		deviceID := entity.DeviceIDFromCtx(ctx)
		ctx = logger.SetDeviceID(ctx, deviceID)

		if r.URL.Path == "/api/health" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))

		duration := time.Since(start)
		slog.InfoContext(ctx, "request completed", "duration_ms", duration.Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				sendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), errInternalText)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		if m.trusted(ip) {
			ip = m.forwardedIP(r, ip)
		}

		if !isValidIP(ip) {
			slog.Warn("invalid IP detected, using fallback", "ip", ip, "remote_addr", r.RemoteAddr)
			ip = "unknown"
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// forwardedIP walks X-Forwarded-For from the nearest hop and returns the
// first address that is not a trusted proxy.
func (m *Middleware) forwardedIP(r *http.Request, peer string) string {
	if xRealIP := removePort(r.Header.Get("X-Real-IP")); isValidIP(xRealIP) {
		return xRealIP
	}

	ip := peer

	parts := splitAndTrim(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(parts) - 1; i >= 0; i-- {
		part := removePort(parts[i])
		if !isValidIP(part) {
			break
		}

		ip = part

		if !m.trusted(part) {
			break
		}
	}

	return ip
}

func (m *Middleware) trusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}

	addr = addr.Unmap()

	for _, p := range m.proxies {
		if p.Contains(addr) {
			return true
		}
	}

	return false
}

func (m *Middleware) WithDeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		ip := entity.IPFromCtx(ctx)
		userAgent := r.UserAgent()

		deviceID := hashDeviceID(ip, userAgent)

		ctx = context.WithValue(ctx, entity.CtxKeyDeviceID{}, deviceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth resolves the bearer access token into the account id.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			sendErr(ctx, w, http.StatusUnauthorized, err, "Token is missing")
			return
		}

		claims, err := m.tokens.ValidateToken(ctx, token)
		if err != nil {
			handleErr(ctx, w, err)
			return
		}

		ctx = entity.WithAccountID(ctx, claims.AccountID)
		ctx = logger.SetUserID(ctx, claims.AccountID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit applies the policy before the handler runs. The identity scope is
// keyed by the signed-in account, else by the identifying fields of the JSON
// body, else by the client IP. The body is buffered and handed on unchanged.
// A limiter store failure lets the request through.
func (m *Middleware) RateLimit(policy ratelimit.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			if err != nil {
				sendErr(ctx, w, http.StatusBadRequest, err, errBadRequestText)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))

			var userID string
			if id, ok := entity.AccountIDFromCtx(ctx); ok {
				userID = id.String()
			}

			ip := entity.IPFromCtx(ctx)
			identity := ratelimit.IdentityKey(userID, identityFields(body), ip)

			err = m.limiter.Check(ctx, policy, ip, identity)
			if err != nil {
				var rateErr *entity.RateLimitedError
				if errors.As(err, &rateErr) {
					handleErr(ctx, w, err)
					return
				}

				slog.ErrorContext(ctx, "rate limiter unavailable", "error", err.Error())
			}

			next.ServeHTTP(w, r)
		})
	}
}

// identityFields picks the top-level string fields of a JSON object body.
func identityFields(body []byte) map[string]string {
	var raw map[string]any

	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string]string, len(raw))

	for k, v := range raw {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}

	return fields
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := []string{}

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func isValidIP(ip string) bool {
	if ip == "" {
		return false
	}

	parsedIP := net.ParseIP(ip)

	return parsedIP != nil
}

func hashDeviceID(ip, userAgent string) string {
	if ip == "" && userAgent == "" {
		return ""
	}

	data := fmt.Sprintf("%s|%s", ip, userAgent)
	hash := md5.Sum([]byte(data))

	return hex.EncodeToString(hash[:])
}
