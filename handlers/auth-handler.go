package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atelierhq/design-portal/auth"
)

// Login resolves an identifier to a portal user and issues a capability
// token. There is no password step; the identifier is the login key.
func Login(c *fiber.Ctx) error {
	type LoginData struct {
		Identifier string `json:"identifier"`
	}

	type UserResponse struct {
		ID         uint   `json:"id"`
		Identifier string `json:"identifier"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		Token      string `json:"token"`
	}

	input := new(LoginData)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Identifier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Identifier is required"})
	}

	user, err := auth.LookupByIdentifier(input.Identifier)
	if err != nil {
		return respondError(c, err)
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown identifier"})
	}

	tokenStr, err := auth.IssueToken(user)
	if err != nil {
		return respondError(c, err)
	}

	// Set JWT cookie (optional, for web clients)
	c.Cookie(&fiber.Cookie{
		Name:     "JWT",
		Value:    tokenStr,
		Expires:  time.Now().Add(time.Hour * 24 * 7),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return ok(c, "Login successful", UserResponse{
		ID:         user.ID,
		Identifier: user.Identifier,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Token:      tokenStr,
	})
}

func Logout(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "JWT",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return ok(c, "Logout successful", nil)
}
