package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

const sessionCookie = "session"

type AuthHandler struct {
	auth         services.AuthService
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(auth services.AuthService, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		secureCookie: secureCookie,
		log:          log,
	}
}

// HandleSignup handles POST /auth/signup
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	admin, err := h.auth.Signup(c.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Name, email and password are required",
			})
		case errors.Is(err, services.ErrSignupDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin signup is disabled",
			})
		case errors.Is(err, repositories.ErrAdminExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "An account with this email already exists",
			})
		default:
			h.log.Error("❌ Signup error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"admin":   admin,
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.auth.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid email or password",
			})
		}
		h.log.Error("❌ Login error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    resp.Token,
		Path:     "/",
		Expires:  time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(resp)
}

// HandleLogout handles POST /auth/logout
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext(), sessionToken(c)); err != nil {
		h.log.Warn("⚠️  Failed to delete session", zap.Error(err))
	}

	c.ClearCookie(sessionCookie)
	return c.JSON(fiber.Map{
		"success": true,
	})
}
