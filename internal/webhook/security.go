package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrIPNotAllowed      = errors.New("ip not allowed")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

const signaturePrefix = "sha256="

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	v := &SecurityValidator{config: config}
	if config.RateLimitPerMin > 0 {
		v.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}
	return v
}

// SignatureRequired reports whether deliveries must carry a valid signature.
func (v *SecurityValidator) SignatureRequired() bool {
	return v.config.Secret != ""
}

// ValidateGitHubSignature verifies GitHub webhook signature.
// Without a configured secret every payload is accepted.
func (v *SecurityValidator) ValidateGitHubSignature(payload []byte, signature string) error {
	if !v.SignatureRequired() {
		return nil
	}

	// GitHub sends signature as "sha256=<hex>"
	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: missing %q prefix", ErrInvalidSignature, signaturePrefix)
	}

	expectedSig, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return fmt.Errorf("%w: bad hex encoding: %v", ErrInvalidSignature, err)
	}

	if !hmac.Equal(expectedSig, Sign(payload, v.config.Secret)) {
		return ErrInvalidSignature
	}

	return nil
}

// Sign computes the raw HMAC-SHA256 of payload with secret.
func Sign(payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// SignatureHeader renders the X-Hub-Signature-256 value for payload.
func SignatureHeader(payload []byte, secret string) string {
	return signaturePrefix + hex.EncodeToString(Sign(payload, secret))
}

// ValidateIPAddress checks if ip is whitelisted.
func (v *SecurityValidator) ValidateIPAddress(ip string) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil // No IP restriction
	}

	parsed := net.ParseIP(ip)
	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		// Check CIDR range
		if strings.Contains(allowedIP, "/") && parsed != nil {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces rate limiting per source key.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per source, expiring idle sources.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimitExceeded, key)
	}
	return nil
}
