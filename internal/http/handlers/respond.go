package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"botilleria/internal/services"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// failure maps a service error to its HTTP status and user-facing message.
func failure(c *fiber.Ctx, err error) error {
	var stock *services.InsufficientStockError
	switch {
	case errors.Is(err, services.ErrDuplicateCode):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidQuantity):
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.As(err, &stock):
		return jsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrStorage):
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return jsonError(c, fiber.StatusInternalServerError, "something went wrong, please try again")
}
