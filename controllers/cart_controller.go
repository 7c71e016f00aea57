package controllers

import (
	"fmt"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

// CartController handles HTTP requests for the caller's own cart.
type CartController struct {
	cartService services.ICartService
}

// NewCartController creates a new CartController instance.
func NewCartController(svc services.ICartService) *CartController {
	return &CartController{cartService: svc}
}

// ListItems handles GET /cart/menu-items.
func (c *CartController) ListItems(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceCart, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	items, err := c.cartService.ListItems(p.User.ID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(items)
}

// AddItem handles POST /cart/menu-items.
func (c *CartController) AddItem(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceCart, services.ActionCreate); err != nil {
		return errorResponse(ctx, err)
	}

	var request struct {
		MenuItem  string   `json:"menuitem"`
		Quantity  int      `json:"quantity"`
		UnitPrice *float64 `json:"unit_price"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	row, err := c.cartService.AddItem(p.User.ID, request.MenuItem, request.Quantity, request.UnitPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("%d of %s has been added successfully", row.Quantity, row.MenuItem.Title),
	})
}

// Clear handles DELETE /cart/menu-items. Clearing an empty cart is ok.
func (c *CartController) Clear(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceCart, services.ActionDelete); err != nil {
		return errorResponse(ctx, err)
	}

	if err := c.cartService.Clear(p.User.ID); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "ok"})
}
