package middleware

import (
	"sync"
	"time"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// idleLimiterTTL is how long an unused per-client bucket is kept.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a token bucket per client IP.
type RateLimitMiddleware struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimitMiddleware reads the bucket size and refill rate from config.
// Without a rateLimit section every request is allowed.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	limit, burst := rate.Inf, 0
	if cfg != nil && cfg.RateLimit != nil {
		limit, burst = rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst
	}

	return &RateLimitMiddleware{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
		now:     time.Now,
	}
}

// Limit rejects a client that exhausted its bucket with 429.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.allow(c.RealIP()) {
			return errors.WithStack(domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) > idleLimiterTTL {
		for k, cl := range m.clients {
			if now.Sub(cl.lastSeen) > idleLimiterTTL {
				delete(m.clients, k)
			}
		}
		m.lastSweep = now
	}

	cl, ok := m.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}
