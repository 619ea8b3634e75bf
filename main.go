package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/auth"
	"github.com/atelierhq/design-portal/config"
	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/models"
	"github.com/atelierhq/design-portal/router"
)

func main() {
	_ = database.GetDB()

	// Run migrations
	err := database.MigrateModels(
		&models.User{},
		&models.DesignType{},
		&models.Image{},
		&models.Comment{},
		&models.RevisionRequest{},
		&models.RevisionRule{},
		&models.Setting{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	auth.SetupAuthService()

	app := fiber.New()
	router.SetupRoutes(app)

	// close the database connection
	defer func() {
		if err := database.CloseDB(); err != nil {
			log.Fatalf("Error closing the database connection: %v", err)
		}
	}()

	port := config.ConfigOr("PORT", "3000")
	fmt.Println("Server is listening at the port " + port)
	log.Fatal(app.Listen(":" + port))
}
