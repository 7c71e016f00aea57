package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit throttles a route group to perMinute requests per client.
// Authenticated clients are counted by their bearer token, anonymous
// ones by IP. A non-positive limit disables throttling.
func RateLimit(perMinute int) fiber.Handler {
	if perMinute <= 0 {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	return limiter.New(limiter.Config{
		Max:        perMinute,
		Expiration: time.Minute,
		KeyGenerator: func(ctx *fiber.Ctx) string {
			header := ctx.Get(fiber.HeaderAuthorization)
			if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
				return token
			}
			return ctx.IP()
		},
		LimitReached: func(ctx *fiber.Ctx) error {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "request was throttled",
			})
		},
	})
}
