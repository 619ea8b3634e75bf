package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/middleware"
)

// SubmitApproval records the client's decision on a deliverable:
// approve, reject (with reason) or revision (with feedback).
func SubmitApproval(c *fiber.Ctx) error {
	clientID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized request"})
	}

	imageID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid image id"})
	}

	type DecisionInput struct {
		Action   string `json:"action"`
		Feedback string `json:"feedback"`
	}

	var input DecisionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	image, count, err := wf().SubmitDecision(uint(imageID), clientID, input.Action, input.Feedback)
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Decision recorded", fiber.Map{
		"image":                  image,
		"revision_request_count": count,
	})
}
