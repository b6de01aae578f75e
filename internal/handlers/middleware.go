package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

const adminLocal = "admin"

// RequireAdmin rejects requests without a live admin session.
func RequireAdmin(auth services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, err := auth.Authenticate(c.UserContext(), sessionToken(c))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Unauthorized",
				})
			}
			return err
		}

		c.Locals(adminLocal, admin)
		return c.Next()
	}
}

// CurrentAdmin returns the admin attached by RequireAdmin.
func CurrentAdmin(c *fiber.Ctx) *models.Admin {
	admin, _ := c.Locals(adminLocal).(*models.Admin)
	return admin
}

func sessionToken(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return c.Cookies(sessionCookie)
}
