package middleware

import (
	"sync"
	"time"

	"career-advisor/internal/config"
	"career-advisor/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/time/rate"
)

const (
	rateLimitIdleTTL    = 10 * time.Minute
	rateLimitMaxClients = 10000
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client IP.
type RateLimitMiddleware struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	if cfg.RPS <= 0 {
		return &RateLimitMiddleware{}
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &RateLimitMiddleware{
		rps:     rate.Limit(cfg.RPS),
		burst:   burst,
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if !m.allow(c.IP()) {
			return NewAppError(fiber.StatusTooManyRequests, response.MessageTooManyRequests, nil)
		}
		return c.Next()
	}
}

func (m *RateLimitMiddleware) allow(key string) bool {
	if m == nil || m.clients == nil {
		return true
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	cl, ok := m.clients[key]
	if !ok {
		if len(m.clients) >= rateLimitMaxClients {
			m.evictIdle(now)
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(m.rps, m.burst)}
		m.clients[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// evictIdle drops buckets unused for rateLimitIdleTTL. An idle bucket is full again,
// so dropping it does not change what the client is allowed.
func (m *RateLimitMiddleware) evictIdle(now time.Time) {
	for k, cl := range m.clients {
		if now.Sub(cl.lastSeen) > rateLimitIdleTTL {
			delete(m.clients, k)
		}
	}
}
