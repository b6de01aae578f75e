package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

type StatsHandler struct {
	stats services.StatsService
	log   *zap.Logger
}

func NewStatsHandler(stats services.StatsService, log *zap.Logger) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		log:   log,
	}
}

// HandleGetStats handles GET /admin/stats
func (h *StatsHandler) HandleGetStats(c *fiber.Ctx) error {
	stats, err := h.stats.Get(c.UserContext())
	if err != nil {
		h.log.Error("❌ Error fetching stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch statistics",
		})
	}

	return c.JSON(stats)
}
