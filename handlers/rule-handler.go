package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type ruleInput struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

func ListRevisionRules(c *fiber.Ctx) error {
	rules, err := wf().ListRules()
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision rules found", rules)
}

func CreateRevisionRule(c *fiber.Ctx) error {
	var input ruleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	rule, err := wf().CreateRule(input.Text)
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision rule created successfully", rule)
}

func UpdateRevisionRule(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rule id"})
	}

	var input ruleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	rule, err := wf().UpdateRule(uint(id), input.Text, input.Order)
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision rule successfully updated", rule)
}

func DeleteRevisionRule(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rule id"})
	}

	if err := wf().DeleteRule(uint(id)); err != nil {
		return respondError(c, err)
	}

	return ok(c, "Revision rule deleted successfully", nil)
}
