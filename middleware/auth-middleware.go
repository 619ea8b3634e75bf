package middleware

import (
	"log"
	"strconv"

	"github.com/go-pkgz/auth/v2/token"
	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/auth"
	"github.com/atelierhq/design-portal/models"
)

func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var tokenStr string

		if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		} else {
			tokenStr = c.Cookies("JWT")
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "You are not authorized!",
			})
		}

		// Validate token using go-pkgz/auth
		claims, err := auth.GetAuthService().TokenService().Parse(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Store user and claims in context
		c.Locals("user", *claims.User)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireRole gates a route group to one portal role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentRole(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

func CheckUserLoggedIn(c *fiber.Ctx) (uint, error) {
	user, ok := c.Locals("user").(token.User)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}

	userID, err := strconv.ParseUint(user.ID, 10, 32)
	if err != nil {
		log.Printf("Failed to parse user ID: %s", user.ID)
	}

	return uint(userID), err
}

// CurrentRole returns the role claim of the logged-in user, or "" when absent.
func CurrentRole(c *fiber.Ctx) string {
	user, ok := c.Locals("user").(token.User)
	if !ok {
		return ""
	}
	role, _ := user.Attributes["role"].(string)
	if !models.ValidRole(role) {
		return ""
	}
	return role
}
