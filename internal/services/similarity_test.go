package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

func TestSimilarityService_Disabled(t *testing.T) {
	svc := NewSimilarityService(&mockCandidateRepo{}, nil, nil)
	assert.False(t, svc.Enabled())

	_, err := svc.Similar(context.Background(), uuid.New(), 5)
	assert.ErrorIs(t, err, ErrSimilarityDisabled)
	assert.ErrorIs(t, svc.Index(context.Background(), &models.Candidate{}), ErrSimilarityDisabled)
	assert.NoError(t, svc.Remove(context.Background(), uuid.New()))
}

func TestSimilarityService_Similar(t *testing.T) {
	id := uuid.New()
	repo := &mockCandidateRepo{}
	index := &mockIndex{}
	want := []models.SimilarCandidate{{ID: uuid.NewString(), Score: 0.91, Name: "Bo", Tier: 3}}

	repo.On("FindByID", id).Return(&models.Candidate{ID: id}, nil)
	index.On("SimilarTo", mock.Anything, id, 5).Return(want, nil)

	svc := NewSimilarityService(repo, &mockGemini{}, index)
	got, err := svc.Similar(context.Background(), id, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSimilarityService_SimilarUnknownCandidate(t *testing.T) {
	id := uuid.New()
	repo := &mockCandidateRepo{}
	repo.On("FindByID", id).Return(nil, repositories.ErrCandidateNotFound)

	_, err := NewSimilarityService(repo, &mockGemini{}, &mockIndex{}).Similar(context.Background(), id, 3)
	assert.ErrorIs(t, err, repositories.ErrCandidateNotFound)
}
