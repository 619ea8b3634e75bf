package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/models"
	"github.com/atelierhq/design-portal/workflow"
)

func Hello(c *fiber.Ctx) error {
	return c.SendString("Hello, World!")
}

func wf() *workflow.Service {
	return workflow.NewService(database.GetDB(), models.DefaultMaxRevisionRequests)
}

// respondError maps workflow errors onto the JSON error envelope. Raw
// infrastructure errors are logged, not echoed to the caller.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrConflict),
		errors.Is(err, models.ErrRevisionCap),
		errors.Is(err, models.ErrRulesNotConfirmed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}
