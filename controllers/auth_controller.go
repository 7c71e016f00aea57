package controllers

import (
	"fmt"
	"strings"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

// AuthController handles account registration and token sessions.
type AuthController struct {
	authService services.IAuthService
}

// NewAuthController creates a new AuthController instance.
func NewAuthController(svc services.IAuthService) *AuthController {
	return &AuthController{authService: svc}
}

// Register handles POST /auth/users.
func (c *AuthController) Register(ctx *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	user, err := c.authService.Register(request.Username, request.Email, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Login handles POST /auth/token/login, exchanging credentials for a
// bearer token.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	token, err := c.authService.Login(ctx.Context(), request.Username, request.Password)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"token": token})
}

// Logout handles POST /auth/token/logout, revoking the caller's token.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if p.Anonymous() {
		return errorResponse(ctx, models.ErrUnauthorized)
	}

	header := ctx.Get(fiber.HeaderAuthorization)
	token, _ := strings.CutPrefix(header, "Bearer ")
	if err := c.authService.Logout(ctx.Context(), token); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "ok"})
}

// Me handles GET /auth/users/me.
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if p.Anonymous() {
		return errorResponse(ctx, models.ErrUnauthorized)
	}
	return ctx.JSON(p.User)
}
