package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

var ErrSimilarityDisabled = errors.New("similarity search is not configured")

// SimilarityService embeds candidate profiles and finds neighbours. It is
// disabled unless both Gemini and Qdrant are configured.
type SimilarityService interface {
	Enabled() bool
	Index(ctx context.Context, candidate *models.Candidate) error
	Similar(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type similarityService struct {
	repo    repositories.CandidateRepository
	gemini  GeminiService
	index   CandidateIndex
	prompts *PromptBuilder
}

func NewSimilarityService(repo repositories.CandidateRepository, gemini GeminiService, index CandidateIndex) SimilarityService {
	return &similarityService{
		repo:    repo,
		gemini:  gemini,
		index:   index,
		prompts: NewPromptBuilder(),
	}
}

func (s *similarityService) Enabled() bool {
	return s.gemini != nil && s.index != nil
}

func (s *similarityService) Index(ctx context.Context, candidate *models.Candidate) error {
	if !s.Enabled() {
		return ErrSimilarityDisabled
	}

	embedding, err := s.gemini.GenerateEmbedding(ctx, s.prompts.BuildProfileText(candidate))
	if err != nil {
		return fmt.Errorf("failed to embed candidate profile: %w", err)
	}

	return s.index.Upsert(ctx, candidate, embedding)
}

func (s *similarityService) Similar(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	if !s.Enabled() {
		return nil, ErrSimilarityDisabled
	}

	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 20 {
		limit = 5
	}
	return s.index.SimilarTo(ctx, id, limit)
}

func (s *similarityService) Remove(ctx context.Context, id uuid.UUID) error {
	if s.index == nil {
		return nil
	}
	return s.index.Delete(ctx, id)
}
