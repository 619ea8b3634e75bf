package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/models"
)

type designTypeInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ListDesignTypes(c *fiber.Ctx) error {
	db := database.GetDB()

	var types []models.DesignType
	if err := db.Order("name asc").Find(&types).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Design types found", types)
}

func CreateDesignType(c *fiber.Ctx) error {
	var input designTypeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	db := database.GetDB()

	var existing models.DesignType
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Design type already exists"})
	}

	dt := models.DesignType{Name: input.Name, Description: input.Description}
	if err := db.Create(&dt).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Design type created successfully", dt)
}

func UpdateDesignType(c *fiber.Ctx) error {
	var input designTypeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	id := c.Params("id")
	db := database.GetDB()

	var dt models.DesignType
	if err := db.First(&dt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design type not found"})
		}
		return respondError(c, err)
	}

	dt.Name = input.Name
	dt.Description = input.Description
	if err := db.Save(&dt).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Design type successfully updated", dt)
}

func DeleteDesignType(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var dt models.DesignType
	if err := db.First(&dt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design type not found"})
		}
		return respondError(c, err)
	}

	if err := db.Delete(&dt).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Design type deleted successfully", nil)
}
