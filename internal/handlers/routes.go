package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

type Router struct {
	Assessment *AssessmentHandler
	Candidates *CandidateHandler
	Stats      *StatsHandler
	Auth       *AuthHandler
	AuthSvc    services.AuthService
}

// Register mounts every API route on api (the /api/v1 group).
func (r *Router) Register(api fiber.Router) {
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/questions", r.Assessment.HandleQuestions)
	api.Post("/assessments", r.Assessment.HandleSubmit)

	auth := api.Group("/auth")
	auth.Post("/signup", r.Auth.HandleSignup)
	auth.Post("/login", r.Auth.HandleLogin)
	auth.Post("/logout", r.Auth.HandleLogout)

	admin := api.Group("/admin", RequireAdmin(r.AuthSvc))
	admin.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"admin": CurrentAdmin(c)})
	})
	admin.Get("/stats", r.Stats.HandleGetStats)
	admin.Get("/candidates", r.Candidates.HandleList)
	admin.Get("/candidates/export.csv", r.Candidates.HandleExport)
	admin.Get("/candidates/:id", r.Candidates.HandleGet)
	admin.Get("/candidates/:id/similar", r.Candidates.HandleSimilar)
	admin.Delete("/candidates/:id", r.Candidates.HandleDelete)
}
