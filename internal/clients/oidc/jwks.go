package oidc

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/samandr77/microservices/identity/internal/entity"
)

var errUnknownKey = errors.New("signing key not found")

type jwk struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	Y   string `json:"y"`
}

type jwkSet struct {
	Keys []jwk `json:"keys"`
}

// KeySet resolves provider signing keys by kid. Keys are cached under
// issuer+kid for a bounded time and count; an unknown kid triggers one
// refetch of the published set.
type KeySet struct {
	issuer string
	url    string
	client *http.Client
	cache  *ttlcache.Cache[string, any]
	mu     sync.Mutex
}

func NewKeySet(issuer, url string, client *http.Client, ttl time.Duration, size uint64) *KeySet {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, any](ttl),
		ttlcache.WithCapacity[string, any](size),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)

	return &KeySet{
		issuer: issuer,
		url:    url,
		client: client,
		cache:  cache,
	}
}

func (s *KeySet) cacheKey(kid string) string {
	return s.issuer + "#" + kid
}

func (s *KeySet) Key(ctx context.Context, kid string) (any, error) {
	if item := s.cache.Get(s.cacheKey(kid)); item != nil {
		return item.Value(), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another caller may have refreshed while we waited
	if item := s.cache.Get(s.cacheKey(kid)); item != nil {
		return item.Value(), nil
	}

	if err := s.refresh(ctx); err != nil {
		return nil, err
	}

	if item := s.cache.Get(s.cacheKey(kid)); item != nil {
		return item.Value(), nil
	}

	return nil, errUnknownKey
}

func (s *KeySet) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return &entity.ExternalServiceError{Service: "jwks " + s.issuer, Err: err}
	}

	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return &entity.ExternalServiceError{
			Service: "jwks " + s.issuer,
			Err:     fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch jwks: status %d", resp.StatusCode)
	}

	var set jwkSet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}

	for _, k := range set.Keys {
		if k.Use != "" && k.Use != "sig" {
			continue
		}

		key, err := k.publicKey()
		if err != nil {
			continue
		}

		s.cache.Set(s.cacheKey(k.Kid), key, ttlcache.DefaultTTL)
	}

	return nil
}

func (k jwk) publicKey() (any, error) {
	switch k.Kty {
	case "RSA":
		n, err := decodeBigInt(k.N)
		if err != nil {
			return nil, err
		}

		e, err := decodeBigInt(k.E)
		if err != nil {
			return nil, err
		}

		return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
	case "EC":
		if k.Crv != "P-256" {
			return nil, fmt.Errorf("unsupported curve %q", k.Crv)
		}

		x, err := decodeBigInt(k.X)
		if err != nil {
			return nil, err
		}

		y, err := decodeBigInt(k.Y)
		if err != nil {
			return nil, err
		}

		return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
	default:
		return nil, fmt.Errorf("unsupported key type %q", k.Kty)
	}
}

func decodeBigInt(s string) (*big.Int, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}

	if len(b) == 0 {
		return nil, errors.New("empty key component")
	}

	return new(big.Int).SetBytes(b), nil
}
