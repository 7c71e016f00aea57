package middleware

import (
	"strings"

	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Auth resolves the Authorization bearer token into a principal stored
// in the request locals. Requests without a valid token proceed as
// anonymous; the policy table decides per endpoint whether that is
// acceptable.
func Auth(authService services.IAuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		principal := &models.Principal{}

		header := ctx.Get(fiber.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			if user, err := authService.Authenticate(ctx.Context(), token); err == nil {
				principal.User = user
			}
		}

		ctx.Locals(principalKey, principal)
		return ctx.Next()
	}
}

// WithPrincipal installs a fixed principal; handler tests use it in
// place of Auth.
func WithPrincipal(p *models.Principal) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		ctx.Locals(principalKey, p)
		return ctx.Next()
	}
}

// Principal returns the principal resolved by Auth, or an anonymous one
// when the middleware did not run.
func Principal(ctx *fiber.Ctx) *models.Principal {
	if p, ok := ctx.Locals(principalKey).(*models.Principal); ok {
		return p
	}
	return &models.Principal{}
}
