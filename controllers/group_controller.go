package controllers

import (
	"fmt"

	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/services"

	"github.com/gofiber/fiber/v2"
)

// GroupController handles role-group administration for the Manager and
// Delivery Crew groups.
type GroupController struct {
	groupService services.IGroupService
}

// NewGroupController creates a new GroupController instance.
func NewGroupController(svc services.IGroupService) *GroupController {
	return &GroupController{groupService: svc}
}

func resourceFor(groupName string) services.Resource {
	if groupName == models.GroupManager {
		return services.ResourceManagerGroup
	}
	return services.ResourceDeliveryCrewGroup
}

// listMembers handles GET /groups/<group>/users.
func (c *GroupController) listMembers(ctx *fiber.Ctx, groupName string) error {
	if err := services.Authorize(middleware.Principal(ctx), resourceFor(groupName), services.ActionRead); err != nil {
		return errorResponse(ctx, err)
	}

	users, err := c.groupService.ListMembers(groupName)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(users)
}

// addMember handles POST /groups/<group>/users.
func (c *GroupController) addMember(ctx *fiber.Ctx, groupName string) error {
	if err := services.Authorize(middleware.Principal(ctx), resourceFor(groupName), services.ActionCreate); err != nil {
		return errorResponse(ctx, err)
	}

	var request struct {
		Username string `json:"username"`
	}
	if err := ctx.BodyParser(&request); err != nil || request.Username == "" {
		return errorResponse(ctx, fmt.Errorf("%w: username is required", models.ErrValidation))
	}

	if err := c.groupService.AddMember(groupName, request.Username); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ok"})
}

// removeMember handles DELETE /groups/<group>/users/:username.
func (c *GroupController) removeMember(ctx *fiber.Ctx, groupName string) error {
	if err := services.Authorize(middleware.Principal(ctx), resourceFor(groupName), services.ActionDelete); err != nil {
		return errorResponse(ctx, err)
	}

	if err := c.groupService.RemoveMember(groupName, ctx.Params("username")); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "ok"})
}

// ListManagers handles GET /groups/manager/users.
func (c *GroupController) ListManagers(ctx *fiber.Ctx) error {
	return c.listMembers(ctx, models.GroupManager)
}

// AddManager handles POST /groups/manager/users.
func (c *GroupController) AddManager(ctx *fiber.Ctx) error {
	return c.addMember(ctx, models.GroupManager)
}

// RemoveManager handles DELETE /groups/manager/users/:username.
func (c *GroupController) RemoveManager(ctx *fiber.Ctx) error {
	return c.removeMember(ctx, models.GroupManager)
}

// ListDeliveryCrew handles GET /groups/delivery-crew/users.
func (c *GroupController) ListDeliveryCrew(ctx *fiber.Ctx) error {
	return c.listMembers(ctx, models.GroupDeliveryCrew)
}

// AddDeliveryCrew handles POST /groups/delivery-crew/users.
func (c *GroupController) AddDeliveryCrew(ctx *fiber.Ctx) error {
	return c.addMember(ctx, models.GroupDeliveryCrew)
}

// RemoveDeliveryCrew handles DELETE /groups/delivery-crew/users/:username.
func (c *GroupController) RemoveDeliveryCrew(ctx *fiber.Ctx) error {
	return c.removeMember(ctx, models.GroupDeliveryCrew)
}
