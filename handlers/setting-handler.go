package handler

import (
	"github.com/gofiber/fiber/v2"
)

func GetMaxRevisionRequests(c *fiber.Ctx) error {
	return ok(c, "Setting found", fiber.Map{
		"max_revision_requests": wf().MaxRevisionRequests(),
	})
}

func SetMaxRevisionRequests(c *fiber.Ctx) error {
	type SettingInput struct {
		MaxRevisionRequests int `json:"max_revision_requests"`
	}

	var input SettingInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := wf().SetMaxRevisionRequests(input.MaxRevisionRequests); err != nil {
		return respondError(c, err)
	}

	return ok(c, "Setting updated successfully", fiber.Map{
		"max_revision_requests": input.MaxRevisionRequests,
	})
}
