package handler

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/middleware"
	"github.com/atelierhq/design-portal/models"
	"github.com/atelierhq/design-portal/storage"
)

var (
	uploader     *storage.ClientUploader
	uploaderOnce sync.Once
)

func getUploader() *storage.ClientUploader {
	uploaderOnce.Do(func() {
		up, err := storage.NewClientUploader(context.Background())
		if err != nil {
			log.Fatalf("Failed to create storage client: %v", err)
		}
		uploader = up
	})
	return uploader
}

// UploadImage stores the binary in the object store first and writes the
// database row after. If the row write fails the remote object is orphaned;
// there is no compensating delete.
func UploadImage(c *fiber.Ctx) error {
	designerID, err := middleware.CheckUserLoggedIn(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized request"})
	}

	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	clientID, err := strconv.ParseUint(c.FormValue("client_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "client_id is required"})
	}
	designTypeID, err := strconv.ParseUint(c.FormValue("design_type_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "design_type_id is required"})
	}

	db := database.GetDB()

	var client models.User
	if err := db.First(&client, clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
		}
		return respondError(c, err)
	}
	if client.Role != models.RoleClient {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Target user is not a client"})
	}

	var designType models.DesignType
	if err := db.First(&designType, designTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Design type not found"})
		}
		return respondError(c, err)
	}

	blobFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error opening the file"})
	}
	defer blobFile.Close()

	result, err := getUploader().Upload(blobFile, file.Filename)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			return respondError(c, err)
		}
		log.Printf("upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error uploading the file"})
	}

	image := models.Image{
		URL:          result.SecureURL,
		PublicID:     result.PublicID,
		DesignerID:   designerID,
		ClientID:     client.ID,
		ClientName:   client.Name,
		DesignTypeID: designType.ID,
		Format:       result.Format,
		Bytes:        result.Bytes,
		Width:        result.Width,
		Height:       result.Height,
		Status:       models.ImageStatusPending,
	}
	if err := db.Create(&image).Error; err != nil {
		log.Printf("image row write failed, object %s orphaned: %v", result.PublicID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error saving to database"})
	}

	return ok(c, "Successfully uploaded the file", image)
}

func GetImage(c *fiber.Ctx) error {
	id := c.Params("id")

	db := database.GetDB()
	var image models.Image
	if err := db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Image not found"})
		}
		return respondError(c, err)
	}

	return ok(c, "Image found", image)
}

func ListImages(c *fiber.Ctx) error {
	db := database.GetDB()

	query := db.Order("created_at desc")
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if designerID := c.Query("designerId"); designerID != "" {
		query = query.Where("designer_id = ?", designerID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var images []models.Image
	if err := query.Find(&images).Error; err != nil {
		return respondError(c, err)
	}

	return ok(c, "Images found", images)
}
