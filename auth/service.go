package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/auth/v2"
	"github.com/go-pkgz/auth/v2/avatar"
	"github.com/go-pkgz/auth/v2/token"
	"github.com/golang-jwt/jwt/v5"

	"github.com/atelierhq/design-portal/config"
	"github.com/atelierhq/design-portal/database"
	"github.com/atelierhq/design-portal/models"
	"gorm.io/gorm"
)

// Global auth service instance
var authService *auth.Service

// Initialize auth service
func SetupAuthService() *auth.Service {
	options := auth.Opts{
		SecretReader: token.SecretFunc(func(id string) (string, error) {
			return config.Config("JWT_SECRET"), nil
		}),
		TokenDuration:  time.Hour * 24,     // JWT token duration
		CookieDuration: time.Hour * 24 * 7, // Cookie duration
		Issuer:         "design-portal",
		URL:            config.ConfigOr("APP_URL", "http://localhost:3000"),
		AvatarStore:    avatar.NewLocalFS("/tmp/avatars"),
	}

	authService = auth.NewService(options)
	return authService
}

// Get the auth service instance
func GetAuthService() *auth.Service {
	return authService
}

// LookupByIdentifier resolves the human-chosen login key to a portal user.
// There are no passwords: the identifier itself is the capability.
func LookupByIdentifier(identifier string) (*models.User, error) {
	db := database.GetDB()
	var user models.User
	if err := db.Where("identifier = ?", identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IssueToken mints a JWT carrying the user's id and role.
func IssueToken(user *models.User) (string, error) {
	claims := token.Claims{
		User: &token.User{
			ID:    fmt.Sprintf("%d", user.ID),
			Name:  user.Name,
			Email: user.Email,
			Attributes: map[string]interface{}{
				"role":       user.Role,
				"identifier": user.Identifier,
			},
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    authService.TokenService().Issuer,
			Audience:  []string{"design-portal"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return authService.TokenService().Token(claims)
}
