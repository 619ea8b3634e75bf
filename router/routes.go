package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	handler "github.com/atelierhq/design-portal/handlers"
	"github.com/atelierhq/design-portal/middleware"
	"github.com/atelierhq/design-portal/models"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	api.Get("/hello", handler.Hello)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	// Everything below requires a capability token
	api.Use(middleware.AuthMiddleware())

	// Users (admin)
	user := api.Group("/users")
	user.Get("/", handler.ListUsers)
	user.Post("/", middleware.RequireRole(models.RoleAdmin), handler.CreateUser)
	user.Get("/:id", handler.GetUser)
	user.Put("/:id", handler.UpdateUser)
	user.Put("/:id/confirm-rules", handler.ConfirmRules)
	user.Delete("/:id", middleware.RequireRole(models.RoleAdmin), handler.DeleteUser)

	// Design types (admin)
	dt := api.Group("/design-types")
	dt.Get("/", handler.ListDesignTypes)
	dt.Post("/", middleware.RequireRole(models.RoleAdmin), handler.CreateDesignType)
	dt.Put("/:id", middleware.RequireRole(models.RoleAdmin), handler.UpdateDesignType)
	dt.Delete("/:id", middleware.RequireRole(models.RoleAdmin), handler.DeleteDesignType)

	// Images and approval workflow
	image := api.Group("/images")
	image.Post("/", middleware.RequireRole(models.RoleDesigner), handler.UploadImage)
	image.Get("/", handler.ListImages)
	image.Get("/:id", handler.GetImage)
	image.Post("/:id/approval", middleware.RequireRole(models.RoleClient), handler.SubmitApproval)

	// Revision requests
	revision := api.Group("/revision-requests")
	revision.Get("/", handler.ListRevisionRequests)
	revision.Put("/:id", middleware.RequireRole(models.RoleDesigner), handler.MarkRevisionDone)

	// Revision rules (admin-managed, clients read)
	rule := api.Group("/revision-rules")
	rule.Get("/", handler.ListRevisionRules)
	rule.Post("/", middleware.RequireRole(models.RoleAdmin), handler.CreateRevisionRule)
	rule.Put("/:id", middleware.RequireRole(models.RoleAdmin), handler.UpdateRevisionRule)
	rule.Delete("/:id", middleware.RequireRole(models.RoleAdmin), handler.DeleteRevisionRule)

	// Global approval policy
	setting := api.Group("/settings")
	setting.Get("/max-revision-requests", handler.GetMaxRevisionRequests)
	setting.Put("/max-revision-requests", middleware.RequireRole(models.RoleAdmin), handler.SetMaxRevisionRequests)

	// Comments
	comment := api.Group("/comments")
	comment.Post("/", handler.PostComment)
	comment.Get("/", handler.ListComments)

	api.Get("/designer/pending-comments", handler.PendingComments)
}
