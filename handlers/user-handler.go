package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/models"
)

func CreateUser(c *fiber.Ctx) error {
	type NewUser struct {
		Identifier string `json:"identifier"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
	}

	input := new(NewUser)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Wrong input data format"})
	}

	if input.Identifier == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identifier and name are required"})
	}
	if !models.ValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be ADMIN, DESIGNER or CLIENT"})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("identifier = ?", input.Identifier).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Identifier already taken"})
	}

	user := models.User{
		Identifier: input.Identifier,
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "User created successfully", user)
}

func GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No user found with ID"})
		}
		return respondError(c, err)
	}

	return ok(c, "User found", user)
}

func ListUsers(c *fiber.Ctx) error {
	db := database.GetDB()

	var users []models.User
	query := db.Order("created_at asc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Users found", users)
}

func UpdateUser(c *fiber.Ctx) error {
	type UpdateUser struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	var input UpdateUser
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	id := c.Params("id")
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return respondError(c, err)
	}

	user.Name = input.Name
	user.Email = input.Email
	if err := db.Save(&user).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "User successfully updated", user)
}

// ConfirmRules toggles the revision-rules confirmation flag for a client.
// Clients cannot request revisions while it is unset. An empty body confirms;
// {"confirmed": false} withdraws the confirmation.
func ConfirmRules(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	type ConfirmInput struct {
		Confirmed *bool `json:"confirmed"`
	}

	confirmed := true
	var input ConfirmInput
	if err := c.BodyParser(&input); err == nil && input.Confirmed != nil {
		confirmed = *input.Confirmed
	}

	user, err := wf().SetRulesConfirmed(uint(id), confirmed)
	if err != nil {
		return respondError(c, err)
	}

	message := "Revision rules confirmed"
	if !confirmed {
		message = "Revision rules confirmation withdrawn"
	}
	return ok(c, message, user)
}

// DeleteUser removes a user together with their images and comments.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.GetDB()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return respondError(c, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", user.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var images []models.Image
		if err := tx.Where("designer_id = ?", user.ID).Find(&images).Error; err != nil {
			return err
		}
		for i := range images {
			if err := tx.Where("image_id = ?", images[i].ID).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("designer_id = ?", user.ID).Delete(&models.Image{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		return respondError(c, err)
	}

	return ok(c, "User deleted successfully", nil)
}
