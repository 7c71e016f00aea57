package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/repository"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

// MenuController handles HTTP requests for the menu catalog, the
// featured listing and categories.
type MenuController struct {
	menuService services.IMenuService
}

// NewMenuController creates a new MenuController instance.
func NewMenuController(svc services.IMenuService) *MenuController {
	return &MenuController{menuService: svc}
}

// ListMenuItems handles GET /menu-items.
func (c *MenuController) ListMenuItems(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceMenu, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	filter := repository.MenuItemFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		PerPage:  ctx.QueryInt("perpage", 10),
		Page:     ctx.QueryInt("page", 1),
	}
	if raw := ctx.Query("to_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errorResponse(ctx, fmt.Errorf("%w: to_price must be a number", models.ErrValidation))
		}
		filter.ToPrice = &price
	}
	if raw := ctx.Query("ordering"); raw != "" {
		filter.Ordering = strings.Split(raw, ",")
	}

	items, err := c.menuService.ListMenuItems(filter)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(items)
}

// CreateMenuItem handles POST /menu-items.
func (c *MenuController) CreateMenuItem(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceMenu, services.ActionCreate); err != nil {
		return errorResponse(ctx, err)
	}

	var input services.MenuItemInput
	if err := ctx.BodyParser(&input); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	item, err := c.menuService.CreateMenuItem(input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(item)
}

// GetMenuItem handles GET /menu-items/:id.
func (c *MenuController) GetMenuItem(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceMenu, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	item, err := c.menuService.GetMenuItem(id)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(item)
}

// UpdateMenuItem handles PUT and PATCH /menu-items/:id. Both apply the
// same partial-update contract: absent fields are left unchanged.
func (c *MenuController) UpdateMenuItem(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceMenu, services.ActionUpdate); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	var update services.MenuItemUpdate
	if err := ctx.BodyParser(&update); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	item, err := c.menuService.UpdateMenuItem(id, update)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(item)
}

// DeleteMenuItem handles DELETE /menu-items/:id.
func (c *MenuController) DeleteMenuItem(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceMenu, services.ActionDelete); err != nil {
		return errorResponse(ctx, err)
	}

	id, err := parseID(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err := c.menuService.DeleteMenuItem(id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "ok"})
}

// ListFeatured handles GET /featured.
func (c *MenuController) ListFeatured(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceFeatured, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	items, err := c.menuService.ListFeatured()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(items)
}

// ToggleFeatured handles POST /featured, flipping one item's flag.
func (c *MenuController) ToggleFeatured(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceFeatured, services.ActionUpdate); err != nil {
		return errorResponse(ctx, err)
	}

	var request struct {
		Item string `json:"item"`
	}
	if err := ctx.BodyParser(&request); err != nil || request.Item == "" {
		return errorResponse(ctx, fmt.Errorf("%w: item is required", models.ErrValidation))
	}

	item, err := c.menuService.ToggleFeatured(request.Item)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(item)
}

// ListCategories handles GET /categories.
func (c *MenuController) ListCategories(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceCategory, services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	categories, err := c.menuService.ListCategories()
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(categories)
}

// CreateCategory handles POST /categories.
func (c *MenuController) CreateCategory(ctx *fiber.Ctx) error {
	if err := services.Authorize(middleware.Principal(ctx), services.ResourceCategory, services.ActionCreate); err != nil {
		return errorResponse(ctx, err)
	}

	var request struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
	}
	if err := ctx.BodyParser(&request); err != nil {
		return errorResponse(ctx, fmt.Errorf("%w: invalid request body", models.ErrValidation))
	}

	category, err := c.menuService.CreateCategory(request.Title, request.Slug)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(category)
}
