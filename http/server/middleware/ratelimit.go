// Package middleware provides HTTP server middleware components.
package middleware

import (
	"time"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"

	"github.com/rise-and-shine/fileserve/http/server"
	"github.com/rise-and-shine/fileserve/kvstore"
)

// codeRateLimited is returned when a client exceeds its request budget.
const codeRateLimited = "RATE_LIMITED"

// RateLimitConfig holds the configuration for the rate limiting middleware.
type RateLimitConfig struct {
	Disable     bool          `yaml:"disable"     validate:"omitempty"`
	MaxRequests int           `yaml:"max_requests" validate:"gte=1"      default:"300"`
	Window      time.Duration `yaml:"window"      validate:"required"   default:"1m"`
}

// NewRateLimitMW creates a middleware that throttles clients exceeding the
// configured request budget.
//
// Requests are counted per client IP over a fixed window. Once the budget is
// exhausted, further requests are rejected with a throttling error until the
// window rolls over. When cfg.Disable is true the middleware is a no-op.
func NewRateLimitMW(cfg RateLimitConfig) server.Middleware {
	if cfg.Disable {
		return server.Middleware{
			Priority: 600,
			Handler:  func(c *fiber.Ctx) error { return c.Next() },
		}
	}

	counters := kvstore.New[int64](
		kvstore.WithDefaultTTL(cfg.Window),
		kvstore.WithSweepInterval(cfg.Window),
	)

	return server.Middleware{
		Priority: 600,
		Handler: func(c *fiber.Ctx) error {
			count := counters.Update(c.IP(), cfg.Window, func(n int64) int64 {
				return n + 1
			})

			if count > int64(cfg.MaxRequests) {
				return errx.New(
					"too many requests, slow down",
					errx.WithCode(codeRateLimited),
					errx.WithType(errx.T_Throttling),
					errx.WithDetails(errx.D{
						"max_requests": cfg.MaxRequests,
						"window":       cast.ToString(cfg.Window),
					}),
				)
			}

			return c.Next()
		},
	}
}
