package middleware

import (
	"net/http"
	"os"
	"sync"

	"classroom-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// TierLimit is the rate budget of one role tier
type TierLimit struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// RateLimitPolicy is the role-tiered rate limit configuration loaded from
// config/security.yaml. Guests are keyed by client IP, authenticated callers
// by user id.
type RateLimitPolicy struct {
	Enabled bool                 `yaml:"enabled"`
	Tiers   map[string]TierLimit `yaml:"tiers"`
}

// DefaultRateLimitPolicy mirrors the limits enforced before the policy file
// existed: admins 50/min, teachers and students 30/min, guests 10/min.
func DefaultRateLimitPolicy() *RateLimitPolicy {
	return &RateLimitPolicy{
		Enabled: true,
		Tiers: map[string]TierLimit{
			"admin":   {RequestsPerMinute: 50, Burst: 10},
			"teacher": {RequestsPerMinute: 30, Burst: 10},
			"student": {RequestsPerMinute: 30, Burst: 10},
			"guest":   {RequestsPerMinute: 10, Burst: 5},
		},
	}
}

// LoadRateLimitPolicy reads the policy file, falling back to defaults when
// the file does not exist
func LoadRateLimitPolicy(path string) (*RateLimitPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", path).Info("security config not found, using default rate limits")
			return DefaultRateLimitPolicy(), nil
		}
		return nil, err
	}

	policy := DefaultRateLimitPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, err
	}
	return policy, nil
}

// rateLimiter tracks one limiter per client key
type rateLimiter struct {
	policy   *RateLimitPolicy
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func (rl *rateLimiter) limiterFor(key string, tier TierLimit) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limiters[key]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(rate.Limit(float64(tier.RequestsPerMinute)/60.0), tier.Burst)
	rl.limiters[key] = limiter
	return limiter
}

// RateLimit enforces the role-tiered policy. It runs after authentication so
// the tier can follow the caller's role; unauthenticated requests fall into
// the guest tier keyed by client IP.
func RateLimit(policy *RateLimitPolicy) gin.HandlerFunc {
	if policy == nil {
		policy = DefaultRateLimitPolicy()
	}
	rl := &rateLimiter{
		policy:   policy,
		limiters: make(map[string]*rate.Limiter),
	}

	return func(c *gin.Context) {
		if !policy.Enabled {
			c.Next()
			return
		}

		tierName := "guest"
		key := "ip:" + c.ClientIP()
		if identity, ok := auth.CurrentIdentity(c); ok {
			tierName = string(identity.Role)
			key = "user:" + identity.UserID.String()
		}

		tier, ok := policy.Tiers[tierName]
		if !ok {
			tier = policy.Tiers["guest"]
		}

		if !rl.limiterFor(key, tier).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "too many requests",
				"message": "rate limit exceeded, slow down",
			})
			return
		}

		c.Next()
	}
}
