package middleware

import (
	"context"
	"sync"
	"time"

	"sklad/config"
	"sklad/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// clientLimiter tracks the limiter of a single client and when it was last used,
// so idle entries can be cleaned up.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware enforces a per-client request rate. Authenticated
// traffic is keyed by user, anonymous traffic by client IP.
type RateLimitMiddleware struct {
	cfg *config.RateLimitConfig

	mu      sync.Mutex
	clients map[string]*clientLimiter
	cancel  context.CancelFunc
}

// NewRateLimitMiddleware creates the middleware and starts the background
// cleanup loop for idle client entries.
func NewRateLimitMiddleware(cfg *config.RateLimitConfig) *RateLimitMiddleware {
	ctx, cancel := context.WithCancel(context.Background())
	m := &RateLimitMiddleware{
		cfg:     cfg,
		clients: make(map[string]*clientLimiter),
		cancel:  cancel,
	}

	if cfg != nil && cfg.Enabled {
		go m.cleanupLoop(ctx)
	}

	return m
}

// LimitByIP limits by client IP. Used on the routes that run before
// authentication, where the IP is all there is to key on.
func (m *RateLimitMiddleware) LimitByIP(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		return m.limit(c, next, "ip:"+c.RealIP())
	}
}

// LimitByUser limits by the authenticated user, so clients behind one
// NAT do not share a budget. It must run after Authenticate; the IP is
// the fallback key if no user is on the context.
func (m *RateLimitMiddleware) LimitByUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if userID, ok := UserID(c); ok {
			return m.limit(c, next, "user:"+userID.String())
		}

		return m.limit(c, next, "ip:"+c.RealIP())
	}
}

func (m *RateLimitMiddleware) limit(c echo.Context, next echo.HandlerFunc, key string) error {
	if m.cfg == nil || !m.cfg.Enabled {
		return next(c)
	}

	if !m.allow(key) {
		return response.TooManyRequests(c, "TOO_MANY_REQUESTS", "Слишком много запросов, попробуйте позже")
	}

	return next(c)
}

// Close stops the cleanup loop.
func (m *RateLimitMiddleware) Close() {
	m.cancel()
}

func (m *RateLimitMiddleware) allow(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[key]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(m.cfg.RequestsPerSecond), m.cfg.Burst),
		}
		m.clients[key] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

func (m *RateLimitMiddleware) cleanupLoop(ctx context.Context) {
	interval := m.cfg.CleanupInterval
	if interval <= 0 {
		interval = 3 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup(interval)
		}
	}
}

// cleanup drops clients idle for longer than the cleanup interval.
func (m *RateLimitMiddleware) cleanup(maxIdle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	for key, client := range m.clients {
		if client.lastSeen.Before(cutoff) {
			delete(m.clients, key)
		}
	}
}
