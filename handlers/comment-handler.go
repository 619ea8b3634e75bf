package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/middleware"
)

func PostComment(c *fiber.Ctx) error {
	authorID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized request"})
	}

	type CommentInput struct {
		ImageID  uint   `json:"image_id"`
		Content  string `json:"content"`
		ParentID *uint  `json:"parent_id"`
	}

	var input CommentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	comment, err := wf().PostComment(input.ImageID, authorID, input.Content, input.ParentID)
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Comment posted successfully", comment)
}

func ListComments(c *fiber.Ctx) error {
	imageID, err := strconv.ParseUint(c.Query("imageId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imageId is required"})
	}

	comments, err := wf().CommentsForImage(uint(imageID))
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Comments found", comments)
}

// PendingComments surfaces client comments still waiting on a designer reply.
func PendingComments(c *fiber.Ctx) error {
	designerID, err := strconv.ParseUint(c.Query("designerId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "designerId is required"})
	}

	comments, err := wf().PendingCommentsForDesigner(uint(designerID))
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Pending comments found", comments)
}
