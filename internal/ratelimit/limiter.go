package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/identity/internal/entity"
	"github.com/samandr77/microservices/identity/pkg/config"
	"github.com/samandr77/microservices/identity/pkg/logger"
)

const keyPrefix = "identity:throttle:"

type Scope string

const (
	ScopeLoginIP             Scope = "login_ip"
	ScopeLoginIdentity       Scope = "login_identity"
	ScopeOTPRequestIP        Scope = "otp_request_ip"
	ScopeOTPRequestIdentity  Scope = "otp_request_identity"
	ScopeOTPVerifyIP         Scope = "otp_verify_ip"
	ScopeOTPVerifyIdentity   Scope = "otp_verify_identity"
	ScopeSocialLoginIP       Scope = "social_login_ip"
	ScopeSocialLoginIdentity Scope = "social_login_identity"
	ScopeSocialPrecheckIP    Scope = "social_precheck_ip"
	ScopeTokenRefreshIP      Scope = "token_refresh_ip"
)

// Policy pairs the IP scope and the identity scope guarding one operation.
// An empty scope is skipped.
type Policy struct {
	IP       Scope
	Identity Scope
}

var (
	PolicyLogin          = Policy{IP: ScopeLoginIP, Identity: ScopeLoginIdentity}
	PolicyOTPRequest     = Policy{IP: ScopeOTPRequestIP, Identity: ScopeOTPRequestIdentity}
	PolicyOTPVerify      = Policy{IP: ScopeOTPVerifyIP, Identity: ScopeOTPVerifyIdentity}
	PolicySocialLogin    = Policy{IP: ScopeSocialLoginIP, Identity: ScopeSocialLoginIdentity}
	PolicySocialPrecheck = Policy{IP: ScopeSocialPrecheckIP}
	PolicyTokenRefresh   = Policy{IP: ScopeTokenRefreshIP}
)

type Rate struct {
	Limit  int64
	Period time.Duration
}

// ParseRate parses "N/s", "N/m", "N/h" or "N/d". Longer unit words such as
// "20/min" are accepted by their first letter.
func ParseRate(s string) (Rate, error) {
	count, unit, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Rate{}, fmt.Errorf("invalid rate %q: expected N/period", s)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
	if err != nil || n <= 0 {
		return Rate{}, fmt.Errorf("invalid rate %q: count must be a positive integer", s)
	}

	unit = strings.ToLower(strings.TrimSpace(unit))
	if unit == "" {
		return Rate{}, fmt.Errorf("invalid rate %q: missing period", s)
	}

	var period time.Duration

	switch unit[0] {
	case 's':
		period = time.Second
	case 'm':
		period = time.Minute
	case 'h':
		period = time.Hour
	case 'd':
		period = 24 * time.Hour
	default:
		return Rate{}, fmt.Errorf("invalid rate %q: unknown period %q", s, unit)
	}

	return Rate{Limit: n, Period: period}, nil
}

// Limiter enforces fixed-window counters in Redis per scope and key.
type Limiter struct {
	redis   redis.UniversalClient
	enabled bool
	rates   map[Scope]Rate
}

func New(client redis.UniversalClient, enabled bool, rates map[Scope]Rate) *Limiter {
	return &Limiter{
		redis:   client,
		enabled: enabled,
		rates:   rates,
	}
}

func NewFromConfig(client redis.UniversalClient, cfg config.ThrottleConfig) (*Limiter, error) {
	raw := map[Scope]string{
		ScopeLoginIP:             cfg.LoginIP,
		ScopeLoginIdentity:       cfg.LoginIdentity,
		ScopeOTPRequestIP:        cfg.OTPRequestIP,
		ScopeOTPRequestIdentity:  cfg.OTPRequestIdentity,
		ScopeOTPVerifyIP:         cfg.OTPVerifyIP,
		ScopeOTPVerifyIdentity:   cfg.OTPVerifyIdentity,
		ScopeSocialLoginIP:       cfg.SocialLoginIP,
		ScopeSocialLoginIdentity: cfg.SocialLoginIdentity,
		ScopeSocialPrecheckIP:    cfg.SocialPrecheckIP,
		ScopeTokenRefreshIP:      cfg.TokenRefreshIP,
	}

	rates := make(map[Scope]Rate, len(raw))

	for scope, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}

		rate, err := ParseRate(s)
		if err != nil {
			return nil, &entity.ConfigurationError{Setting: "THROTTLE_" + strings.ToUpper(string(scope)), Reason: err.Error()}
		}

		rates[scope] = rate
	}

	return New(client, cfg.Enabled, rates), nil
}

func (l *Limiter) Enabled() bool {
	return l.enabled
}

// Allow counts one hit for key in scope. Over the limit it returns a
// *entity.RateLimitedError carrying the remaining window.
func (l *Limiter) Allow(ctx context.Context, scope Scope, key string) error {
	if !l.enabled || scope == "" {
		return nil
	}

	rate, ok := l.rates[scope]
	if !ok {
		return nil
	}

	redisKey := keyPrefix + string(scope) + ":" + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)

	// Fixed window: NX leaves the TTL of an open window alone and repairs a
	// key that lost its expiry.
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rate.Period)
		pttl = pipe.PTTL(ctx, redisKey)

		return nil
	})
	if err != nil {
		return fmt.Errorf("count %s: %w", scope, err)
	}

	if incr.Val() <= rate.Limit {
		return nil
	}

	retryAfter := pttl.Val()
	if retryAfter <= 0 {
		retryAfter = rate.Period
	}

	ctx = logger.SetLogType(ctx, "security")
	slog.WarnContext(ctx, "Rate limit exceeded", "scope", scope, "retry_after", retryAfter)

	return &entity.RateLimitedError{Scope: string(scope), RetryAfter: retryAfter}
}

// Check applies both scopes of the policy. Either window being exceeded
// rejects the request.
func (l *Limiter) Check(ctx context.Context, p Policy, ip, identity string) error {
	if !l.enabled {
		return nil
	}

	if p.IP != "" && ip != "" {
		if err := l.Allow(ctx, p.IP, ip); err != nil {
			return err
		}
	}

	if p.Identity != "" {
		if identity == "" {
			identity = ip
		}

		if err := l.Allow(ctx, p.Identity, identity); err != nil {
			return err
		}
	}

	return nil
}
