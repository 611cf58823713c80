package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"asana/config"
	"asana/internal/delivery/http/response"
	"asana/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultRateLimit  = 20
	defaultRateWindow = time.Minute
)

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	limit   int
	window  time.Duration
}

// RateLimitParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *redis.Client `optional:"true"`
}

// NewRateLimitMiddleware creates the middleware. Without a Redis client the
// middleware is a pass-through, so the service runs fine with Redis disabled.
func NewRateLimitMiddleware(params RateLimitParams) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		logger: params.Logger,
		limit:  defaultRateLimit,
		window: defaultRateWindow,
	}

	if cfg := params.Config.RateLimit; cfg != nil {
		if cfg.Limit > 0 {
			m.limit = cfg.Limit
		}
		if cfg.Window > 0 {
			m.window = cfg.Window
		}
	}

	if params.Client != nil {
		m.limiter = ratelimit.NewLimiter(params.Client, "ratelimit:")
	}

	return m
}

// Handle enforces the per-IP, per-route limit. Redis failures fail open:
// auth availability matters more than strict throttling.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		key := c.RealIP() + ":" + c.Path()

		result, err := m.limiter.Allow(c.Request().Context(), key, m.limit, m.window)
		if err != nil {
			m.logger.Warn("Rate limit check failed, allowing request",
				slog.String("key", key), slog.Any("error", err))

			return next(c)
		}

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		header.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := max(int(time.Until(result.ResetAt).Seconds()), 1)
			header.Set("Retry-After", strconv.Itoa(retryAfter))

			return response.TooManyRequests(c, "TOO_MANY_REQUESTS", "Too many requests, please try again later")
		}

		return next(c)
	}
}
