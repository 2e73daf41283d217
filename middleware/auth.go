package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"crewdesk/config"
	"crewdesk/crud"
	"crewdesk/models"
)

// Protected authenticates the request with a bearer token from the
// accesstoken table and puts the user into the request locals
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization required",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization format",
			})
		}
		token := tokenParts[1]

		at, err := crud.GetAccessToken(config.DB, token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to look up token",
			})
		}
		if at == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// The token row carries no expiry column, age it out by CreatedAt
		ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
		if time.Since(at.CreatedAt) > ttl {
			_ = crud.DeleteAccessToken(config.DB, token)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		var user models.User
		if err := config.DB.First(&user, at.UserID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account is not active",
			})
		}

		c.Locals("user", &user)
		c.Locals("token", token)

		return c.Next()
	}
}

// CurrentUser returns the authenticated user set by Protected
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
