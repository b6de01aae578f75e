package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

type CandidateHandler struct {
	repo       repositories.CandidateRepository
	stats      services.StatsService
	similarity services.SimilarityService
	log        *zap.Logger
}

func NewCandidateHandler(
	repo repositories.CandidateRepository,
	stats services.StatsService,
	similarity services.SimilarityService,
	log *zap.Logger,
) *CandidateHandler {
	return &CandidateHandler{
		repo:       repo,
		stats:      stats,
		similarity: similarity,
		log:        log,
	}
}

// HandleList handles GET /admin/candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	candidates, err := h.repo.List(filter)
	if err != nil {
		h.log.Error("❌ Failed to fetch candidates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch candidates",
		})
	}

	return c.JSON(models.CandidateListResponse{Candidates: candidates})
}

// HandleGet handles GET /admin/candidates/:id
func (h *CandidateHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.repo.FindByID(id)
	if err != nil {
		return h.candidateError(c, err)
	}

	return c.JSON(fiber.Map{
		"candidate":  candidate,
		"tierResult": candidate.TierResult(),
	})
}

// HandleDelete handles DELETE /admin/candidates/:id
func (h *CandidateHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	if err := h.repo.Delete(id); err != nil {
		return h.candidateError(c, err)
	}

	ctx := c.UserContext()
	if err := h.stats.Invalidate(ctx); err != nil {
		h.log.Warn("⚠️  Failed to invalidate stats cache", zap.Error(err))
	}
	if err := h.similarity.Remove(ctx, id); err != nil {
		h.log.Warn("⚠️  Failed to remove candidate from similarity index", zap.Error(err))
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

// HandleExport handles GET /admin/candidates/export.csv
func (h *CandidateHandler) HandleExport(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	candidates, err := h.repo.List(filter)
	if err != nil {
		h.log.Error("❌ Failed to export candidates", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export candidates",
		})
	}

	var buf bytes.Buffer
	if err := services.WriteCandidatesCSV(&buf, candidates); err != nil {
		return err
	}

	filename := fmt.Sprintf("candidates-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// HandleSimilar handles GET /admin/candidates/:id/similar
func (h *CandidateHandler) HandleSimilar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	similar, err := h.similarity.Similar(c.UserContext(), id, c.QueryInt("limit", 5))
	if err != nil {
		if errors.Is(err, services.ErrSimilarityDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Similarity search is not configured",
			})
		}
		return h.candidateError(c, err)
	}

	return c.JSON(fiber.Map{
		"similar": similar,
	})
}

func (h *CandidateHandler) candidateError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrCandidateNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	h.log.Error("❌ Candidate request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}

func parseFilter(c *fiber.Ctx) (models.CandidateFilter, error) {
	filter := models.CandidateFilter{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
	}

	if raw := c.Query("tier"); raw != "" && raw != "all" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 4 {
			return filter, fmt.Errorf("tier must be 'all' or a number from 0 to 4")
		}
		filter.Tier = &n
	}

	return filter, nil
}
