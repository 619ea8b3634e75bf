package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MarkRevisionDone lets the assigned designer resolve a pending revision
// request. A request that is not PENDING is rejected.
func MarkRevisionDone(c *fiber.Ctx) error {
	requestID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid revision request id"})
	}

	request, err := wf().MarkRevisionDone(uint(requestID))
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision request marked done", request)
}

func ListRevisionRequests(c *fiber.Ctx) error {
	imageID, err := strconv.ParseUint(c.Query("imageId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imageId is required"})
	}

	requests, err := wf().RevisionRequestsForImage(uint(imageID))
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision requests found", requests)
}
