package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/logger"
	"github.com/kikoolz/desishub-assessment-app/internal/metrics"
	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

// FollowUpService runs the post-submission work for one candidate: result
// email, reviewer summary and similarity indexing. Tier fields are never
// touched here.
type FollowUpService interface {
	Process(ctx context.Context, id uuid.UUID) error
}

type followUpService struct {
	repo       repositories.CandidateRepository
	mailer     Mailer
	gemini     GeminiService
	similarity SimilarityService
	prompts    *PromptBuilder
	maxRetries int
	log        *zap.Logger
}

// NewFollowUpService wires the job. gemini may be nil.
func NewFollowUpService(
	repo repositories.CandidateRepository,
	mailer Mailer,
	gemini GeminiService,
	similarity SimilarityService,
	maxRetries int,
	log *zap.Logger,
) FollowUpService {
	return &followUpService{
		repo:       repo,
		mailer:     mailer,
		gemini:     gemini,
		similarity: similarity,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
		log:        log,
	}
}

func (f *followUpService) Process(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	defer func() {
		metrics.FollowUpJobDuration.Observe(time.Since(start).Seconds())
	}()

	claimed, err := f.repo.ClaimNotification(id)
	if err != nil {
		return err
	}
	if !claimed {
		f.log.Debug("Follow-up already claimed", zap.String("candidate_id", id.String()))
		return nil
	}

	candidate, err := f.repo.FindByID(id)
	if err != nil {
		f.finish(id, models.NotificationFailed, err)
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	log := f.log.With(
		zap.String("candidate_id", id.String()),
		zap.Int("tier", candidate.AssignedTier))

	sendErr := f.sendResultEmail(ctx, candidate)

	f.summarize(ctx, candidate, log)
	if f.similarity != nil && f.similarity.Enabled() {
		if err := f.similarity.Index(ctx, candidate); err != nil {
			log.Warn("⚠️  Failed to index candidate profile", zap.Error(err))
		}
	}

	switch {
	case sendErr == nil:
		log.Info("✅ Tier result email sent", zap.String("mailer", f.mailer.Name()))
		f.finish(id, models.NotificationSent, nil)
		return nil
	case errors.Is(sendErr, ErrMailerDisabled):
		f.finish(id, models.NotificationSkipped, nil)
		return nil
	default:
		log.Error("❌ Failed to send tier result email", zap.Error(sendErr))
		f.finish(id, models.NotificationFailed, sendErr)
		return sendErr
	}
}

func (f *followUpService) sendResultEmail(ctx context.Context, candidate *models.Candidate) error {
	msg, err := RenderTierEmail(candidate)
	if err != nil {
		return err
	}

	attempts := f.maxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		err = f.mailer.Send(ctx, msg)
		if err == nil || errors.Is(err, ErrMailerDisabled) || attempt >= attempts {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}
}

func (f *followUpService) summarize(ctx context.Context, candidate *models.Candidate, log *zap.Logger) {
	if f.gemini == nil {
		return
	}

	summary, err := f.gemini.GenerateTextWithRetry(ctx, f.prompts.BuildReviewerSummaryPrompt(candidate), 0.3, f.maxRetries)
	if err != nil {
		log.Warn("⚠️  Failed to generate reviewer summary", zap.Error(err))
		return
	}

	if err := f.repo.UpdateReviewerSummary(candidate.ID, logger.Truncate(summary, 2000)); err != nil {
		log.Warn("⚠️  Failed to store reviewer summary", zap.Error(err))
	}
}

func (f *followUpService) finish(id uuid.UUID, status models.NotificationStatus, cause error) {
	errMsg := ""
	if cause != nil {
		errMsg = logger.Truncate(cause.Error(), 500)
	}

	if err := f.repo.UpdateNotification(id, status, errMsg); err != nil {
		f.log.Error("❌ Failed to record notification status",
			zap.String("candidate_id", id.String()),
			zap.String("status", string(status)),
			zap.Error(err))
	}

	metrics.FollowUpJobsCompleted.WithLabelValues(string(status)).Inc()
}
