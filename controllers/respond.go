package controllers

import (
	"errors"

	"restaurant-api/models"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps the service error taxonomy onto HTTP codes once, at
// the request boundary. Unclassified faults are internal errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusNotAcceptable
	}
	return fiber.StatusInternalServerError
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	return ctx.Status(statusFor(err)).JSON(fiber.Map{"message": err.Error()})
}

func parseID(ctx *fiber.Ctx) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, models.ErrNotFound
	}
	return uint(id), nil
}
