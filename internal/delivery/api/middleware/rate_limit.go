package middleware

import (
	"sync"
	"time"

	"vidtube/config"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientLimiter hands out a token bucket per client address.
type ClientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	lastGC  time.Time
	now     func() time.Time
}

// NewClientLimiter allows requests events per window and a burst on top of it.
// Clients idle for longer than ttl are forgotten.
func NewClientLimiter(requests int, window time.Duration, burst int, ttl time.Duration) *ClientLimiter {
	requests = max(requests, 1)
	burst = max(burst, 1)
	if window <= 0 {
		window = time.Minute
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &ClientLimiter{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   burst,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Allow consumes one token of key's bucket.
func (l *ClientLimiter) Allow(key string) bool {
	if key == "" {
		key = "unknown"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastGC) > l.ttl {
		for k, cl := range l.clients {
			if now.Sub(cl.lastSeen) > l.ttl {
				delete(l.clients, k)
			}
		}
		l.lastGC = now
	}

	cl, ok := l.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1)
}

// RateLimitMiddlewareParams defines the parameters required by the rate limiter.
type RateLimitMiddlewareParams struct {
	fx.In

	Cfg *config.Config
}

// RateLimitMiddleware throttles the credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter *ClientLimiter
}

// NewRateLimitMiddleware builds one limiter shared by every throttled route,
// sized from the rateLimit config section.
func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	rl := params.Cfg.RateLimit

	return &RateLimitMiddleware{
		limiter: NewClientLimiter(rl.Requests, rl.Window, rl.Burst, rl.TTL),
	}
}

// Limit answers 429 TOO_MANY_REQUESTS once the client has spent its bucket. The
// client is c.RealIP(), as resolved by the server's IPExtractor.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.limiter.Allow(c.RealIP()) {
			return domainerrors.ErrTooManyRequests
		}

		return next(c)
	}
}
