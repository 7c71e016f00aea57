package controllers

import (
	"fmt"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// ListOrders handles GET /orders: managers see every order, delivery
// crew the ones assigned to them, customers their own.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceOrder, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := c.orderService.ListOrders(p)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(orders)
}

// Checkout handles POST /orders, converting the caller's cart into an
// order.
func (c *OrderController) Checkout(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceOrder, services.ActionCreate); err != nil {
		return errorResponse(ctx, err)
	}

	order, err := c.orderService.Checkout(p.User.ID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(order)
}

// GetOrder handles GET /orders/:id, owner only.
func (c *OrderController) GetOrder(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceOrder, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	order, err := c.orderService.GetOrder(p, id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(order)
}

// UpdateOrder handles PUT and PATCH /orders/:id under the role rules.
func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceOrder, services.ActionUpdate); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	var update services.OrderUpdate
	if err := ctx.BodyParser(&update); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	order, err := c.orderService.UpdateOrder(p, id, update)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(order)
}

// DeleteOrder handles DELETE /orders/:id, manager only.
func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	p := middleware.Principal(ctx)
	if err := services.Authorize(p, services.ResourceOrder, services.ActionDelete); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err := c.orderService.DeleteOrder(id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "ok"})
}
