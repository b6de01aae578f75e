package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

type mockCandidateRepo struct {
	mock.Mock
}

func (m *mockCandidateRepo) Create(candidate *models.Candidate) error {
	return m.Called(candidate).Error(0)
}

func (m *mockCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	args := m.Called(id)
	c, _ := args.Get(0).(*models.Candidate)
	return c, args.Error(1)
}

func (m *mockCandidateRepo) List(filter models.CandidateFilter) ([]models.Candidate, error) {
	args := m.Called(filter)
	c, _ := args.Get(0).([]models.Candidate)
	return c, args.Error(1)
}

func (m *mockCandidateRepo) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *mockCandidateRepo) ClaimNotification(id uuid.UUID) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCandidateRepo) UpdateNotification(id uuid.UUID, status models.NotificationStatus, errMsg string) error {
	return m.Called(id, status, errMsg).Error(0)
}

func (m *mockCandidateRepo) UpdateReviewerSummary(id uuid.UUID, summary string) error {
	return m.Called(id, summary).Error(0)
}

func (m *mockCandidateRepo) FindPendingNotifications(limit int) ([]models.Candidate, error) {
	args := m.Called(limit)
	c, _ := args.Get(0).([]models.Candidate)
	return c, args.Error(1)
}

func (m *mockCandidateRepo) ReleaseStaleClaims(before time.Time) (int64, error) {
	args := m.Called(before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCandidateRepo) EachBatch(size int, fn func(batch []models.Candidate) error) error {
	args := m.Called(size, fn)
	if batch, ok := args.Get(1).([]models.Candidate); ok {
		if err := fn(batch); err != nil {
			return err
		}
	}
	return args.Error(0)
}

func (m *mockCandidateRepo) CountByTier() ([]models.TierCount, error) {
	args := m.Called()
	c, _ := args.Get(0).([]models.TierCount)
	return c, args.Error(1)
}

func (m *mockCandidateRepo) CountSince(since time.Time) (int64, error) {
	args := m.Called(since)
	return args.Get(0).(int64), args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(admin *models.Admin) error {
	return m.Called(admin).Error(0)
}

func (m *mockAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	args := m.Called(email)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockAdminRepo) FindByID(id uuid.UUID) (*models.Admin, error) {
	args := m.Called(id)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg *Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMailer) Name() string { return "mock" }

type mockGemini struct {
	mock.Mock
}

func (m *mockGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	v, _ := args.Get(0).([]float32)
	return v, args.Error(1)
}

func (m *mockGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	args := m.Called(ctx, prompt, temperature)
	return args.String(0), args.Error(1)
}

func (m *mockGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	args := m.Called(ctx, prompt, temperature, maxRetries)
	return args.String(0), args.Error(1)
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) InitCollection(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockIndex) Upsert(ctx context.Context, candidate *models.Candidate, embedding []float32) error {
	return m.Called(ctx, candidate, embedding).Error(0)
}

func (m *mockIndex) SimilarTo(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	args := m.Called(ctx, id, limit)
	v, _ := args.Get(0).([]models.SimilarCandidate)
	return v, args.Error(1)
}

func (m *mockIndex) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStats struct {
	mock.Mock
}

func (m *mockStats) Get(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.DashboardStats)
	return s, args.Error(1)
}

func (m *mockStats) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingEnqueuer struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (r *recordingEnqueuer) EnqueueJob(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
}

func (r *recordingEnqueuer) Jobs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uuid.UUID(nil), r.ids...)
}
