package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/metrics"
	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

// JobEnqueuer accepts candidate ids for follow-up processing.
type JobEnqueuer interface {
	EnqueueJob(id uuid.UUID)
}

type AssessmentService interface {
	Submit(ctx context.Context, raw []byte) (*models.AssessmentResponse, error)
}

type assessmentService struct {
	repo     repositories.CandidateRepository
	stats    StatsService
	enqueuer JobEnqueuer
	log      *zap.Logger
}

func NewAssessmentService(
	repo repositories.CandidateRepository,
	stats StatsService,
	enqueuer JobEnqueuer,
	log *zap.Logger,
) AssessmentService {
	return &assessmentService{
		repo:     repo,
		stats:    stats,
		enqueuer: enqueuer,
		log:      log,
	}
}

// Submit validates, classifies and stores one assessment. The tier is always
// computed here from the answers.
func (s *assessmentService) Submit(ctx context.Context, raw []byte) (*models.AssessmentResponse, error) {
	if err := ValidateSubmission(raw); err != nil {
		metrics.AssessmentsRejected.WithLabelValues("schema").Inc()
		return nil, err
	}

	var req models.AssessmentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		metrics.AssessmentsRejected.WithLabelValues("schema").Inc()
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: "must be a valid JSON object"}}}
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		metrics.AssessmentsRejected.WithLabelValues("schema").Inc()
		return nil, &ValidationError{Fields: []FieldError{{Field: "body", Message: "Name, email, and phone are required"}}}
	}
	if !isBareAddress(req.Email) {
		metrics.AssessmentsRejected.WithLabelValues("schema").Inc()
		return nil, &ValidationError{Fields: []FieldError{{Field: "email", Message: "must be a plain email address"}}}
	}

	answers := req.Answers()
	if err := tier.Validate(answers); err != nil {
		metrics.AssessmentsRejected.WithLabelValues("invalid_answers").Inc()
		return nil, err
	}

	match := tier.Evaluate(answers)
	candidate := newCandidate(&req, answers, match)

	if err := s.repo.Create(candidate); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			metrics.AssessmentsRejected.WithLabelValues("duplicate_email").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	s.log.Info("✅ Assessment classified",
		zap.String("candidate_id", candidate.ID.String()),
		zap.Int("tier", match.Result.Tier),
		zap.String("rule", match.Rule))

	metrics.AssessmentsClassified.WithLabelValues(strconv.Itoa(match.Result.Tier), match.Rule).Inc()

	if err := s.stats.Invalidate(ctx); err != nil {
		s.log.Warn("⚠️  Failed to invalidate stats cache", zap.Error(err))
	}

	s.enqueuer.EnqueueJob(candidate.ID)

	return &models.AssessmentResponse{
		Success:    true,
		Candidate:  candidate,
		TierResult: match.Result,
	}, nil
}

func newCandidate(req *models.AssessmentRequest, answers tier.Answers, match tier.Match) *models.Candidate {
	candidate := &models.Candidate{
		ID:                 uuid.New(),
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		WebTechnologies:    answers.WebTechnologies,
		CanBuildCRUD:       string(answers.CanBuildCRUD),
		CanImplementAuth:   string(answers.CanImplementAuth),
		BackendFrameworks:  answers.BackendFrameworks,
		KnowsGolang:        string(answers.KnowsGolang),
		HasDeployed:        string(answers.HasDeployed),
		CanBuildAuthAPI:    string(answers.CanBuildAuthAPI),
		AssignedTier:       match.Result.Tier,
		TierName:           match.Result.TierName,
		TierDescription:    match.Result.Description,
		Recommendations:    match.Result.Recommendations,
		ClassificationRule: match.Rule,
		NotificationStatus: models.NotificationPending,
	}

	if linkedIn := strings.TrimSpace(req.LinkedIn); linkedIn != "" {
		candidate.LinkedIn = &linkedIn
	}

	if candidate.WebTechnologies == nil {
		candidate.WebTechnologies = []string{}
	}
	if candidate.BackendFrameworks == nil {
		candidate.BackendFrameworks = []string{}
	}

	return candidate
}
