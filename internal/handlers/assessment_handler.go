package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

type AssessmentHandler struct {
	service services.AssessmentService
	log     *zap.Logger
}

func NewAssessmentHandler(service services.AssessmentService, log *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service: service,
		log:     log,
	}
}

// HandleSubmit handles POST /assessments
func (h *AssessmentHandler) HandleSubmit(c *fiber.Ctx) error {
	resp, err := h.service.Submit(c.UserContext(), c.Body())
	if err != nil {
		var validationErr *services.ValidationError
		var answerErr *tier.InvalidAnswerError

		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Invalid submission",
				"fields": validationErr.Fields,
			})
		case errors.As(err, &answerErr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid answer for " + answerErr.Field,
				"field": answerErr.Field,
			})
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Email already exists",
			})
		default:
			h.log.Error("❌ Failed to create candidate", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create candidate",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleQuestions handles GET /questions
func (h *AssessmentHandler) HandleQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": models.Questions(),
	})
}
