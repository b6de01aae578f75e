package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

const validToken = "valid-token"

type mockAssessmentService struct{ mock.Mock }

func (m *mockAssessmentService) Submit(ctx context.Context, raw []byte) (*models.AssessmentResponse, error) {
	args := m.Called(ctx, raw)
	r, _ := args.Get(0).(*models.AssessmentResponse)
	return r, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) CreateAdmin(ctx context.Context, req models.SignupRequest) (*models.Admin, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.Admin, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*models.LoginResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	args := m.Called(ctx, token)
	a, _ := args.Get(0).(*models.Admin)
	return a, args.Error(1)
}

type mockCandidateRepo struct {
	repositories.CandidateRepository
	mock.Mock
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

type mockStats struct{ mock.Mock }

func (m *mockStats) Get(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.DashboardStats)
	return s, args.Error(1)
}

func (m *mockStats) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockSimilarity struct{ mock.Mock }

func (m *mockSimilarity) Enabled() bool { return m.Called().Bool(0) }

func (m *mockSimilarity) Index(ctx context.Context, candidate *models.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *mockSimilarity) Similar(ctx context.Context, id uuid.UUID, limit int) ([]models.SimilarCandidate, error) {
	args := m.Called(ctx, id, limit)
	s, _ := args.Get(0).([]models.SimilarCandidate)
	return s, args.Error(1)
}

func (m *mockSimilarity) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type testApp struct {
	app        *fiber.App
	assessment *mockAssessmentService
	auth       *mockAuthService
	repo       *mockCandidateRepo
	stats      *mockStats
	similarity *mockSimilarity
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	log := zap.NewNop()

	ta := &testApp{
		app:        fiber.New(),
		assessment: &mockAssessmentService{},
		auth:       &mockAuthService{},
		repo:       &mockCandidateRepo{},
		stats:      &mockStats{},
		similarity: &mockSimilarity{},
	}

	admin := &models.Admin{ID: uuid.New(), Email: "root@example.com", Name: "Root"}
	ta.auth.On("Authenticate", mock.Anything, validToken).Return(admin, nil).Maybe()
	ta.auth.On("Authenticate", mock.Anything, mock.Anything).Return(nil, services.ErrUnauthorized).Maybe()

	router := &Router{
		Assessment: NewAssessmentHandler(ta.assessment, log),
		Candidates: NewCandidateHandler(ta.repo, ta.stats, ta.similarity, log),
		Stats:      NewStatsHandler(ta.stats, log),
		Auth:       NewAuthHandler(ta.auth, false, log),
		AuthSvc:    ta.auth,
	}
	router.Register(ta.app.Group("/api/v1"))
	return ta
}

func (ta *testApp) do(t *testing.T, method, path, body string, authed bool) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+validToken)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	_ = json.Unmarshal(raw, &payload)
	return resp, payload
}

func TestHandleSubmit_Created(t *testing.T) {
	ta := newTestApp(t)
	result := tier.Classify(tier.Lowest())
	ta.assessment.On("Submit", mock.Anything, []byte(`{"name":"Bo"}`)).Return(&models.AssessmentResponse{
		Success:    true,
		Candidate:  &models.Candidate{ID: uuid.New(), Name: "Bo"},
		TierResult: result,
	}, nil)

	resp, body := ta.do(t, http.MethodPost, "/api/v1/assessments", `{"name":"Bo"}`, false)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Beginner", body["tierResult"].(map[string]interface{})["tierName"])
}

func TestHandleSubmit_ErrorMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{"schema", &services.ValidationError{Fields: []services.FieldError{{Field: "phone", Message: "required"}}}, 400, "Invalid submission"},
		{"unknown answer", &tier.InvalidAnswerError{Field: "knowsGolang", Value: "expert"}, 400, "Invalid answer for knowsGolang"},
		{"duplicate", repositories.ErrDuplicateEmail, 400, "Email already exists"},
		{"database", errors.New("connection reset"), 500, "Failed to create candidate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.assessment.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.err)

			resp, body := ta.do(t, http.MethodPost, "/api/v1/assessments", `{}`, false)
			assert.Equal(t, tt.wantCode, resp.StatusCode)
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestHandleQuestions(t *testing.T) {
	ta := newTestApp(t)
	resp, body := ta.do(t, http.MethodGet, "/api/v1/questions", "", false)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["questions"], 10)
}

func TestAdminRoutes_RequireSession(t *testing.T) {
	ta := newTestApp(t)
	for _, path := range []string{"/api/v1/admin/stats", "/api/v1/admin/candidates", "/api/v1/admin/candidates/export.csv"} {
		resp, body := ta.do(t, http.MethodGet, path, "", false)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
		assert.Equal(t, "Unauthorized", body["error"])
	}
	ta.repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestAdminRoutes_AcceptSessionCookie(t *testing.T) {
	ta := newTestApp(t)
	ta.stats.On("Get", mock.Anything).Return(&models.DashboardStats{TotalCandidates: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: validToken})
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleList_ParsesFilter(t *testing.T) {
	ta := newTestApp(t)
	two := 2
	ta.repo.On("List", models.CandidateFilter{Tier: &two, Search: "ada", SortBy: "name", SortOrder: "asc"}).
		Return([]models.Candidate{{Name: "Ada"}}, nil)

	resp, body := ta.do(t, http.MethodGet, "/api/v1/admin/candidates?tier=2&search=ada&sortBy=name&sortOrder=asc", "", true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["candidates"], 1)
}

func TestHandleList_AllTiersAndDefaults(t *testing.T) {
	ta := newTestApp(t)
	ta.repo.On("List", models.CandidateFilter{SortBy: "createdAt", SortOrder: "desc"}).Return([]models.Candidate{}, nil)

	resp, _ := ta.do(t, http.MethodGet, "/api/v1/admin/candidates?tier=all", "", true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ta.repo.AssertExpectations(t)
}

func TestHandleList_RejectsBadTier(t *testing.T) {
	ta := newTestApp(t)
	resp, _ := ta.do(t, http.MethodGet, "/api/v1/admin/candidates?tier=7", "", true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleExport(t *testing.T) {
	ta := newTestApp(t)
	ta.repo.On("List", mock.Anything).Return([]models.Candidate{{
		Name: "Ada", Email: "ada@example.com", Phone: "1", AssignedTier: 4,
		CreatedAt: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC),
	}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/candidates/export.csv", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Equal(t, "Name,Email,Phone,Tier,Date\nAda,ada@example.com,1,Tier 4,2025-05-04\n", string(raw))
}

func TestHandleGet(t *testing.T) {
	ta := newTestApp(t)
	id := uuid.New()
	ta.repo.On("FindByID", id).Return(&models.Candidate{ID: id, AssignedTier: 1, TierName: "CRUD Developer"}, nil)
	missing := uuid.New()
	ta.repo.On("FindByID", missing).Return(nil, repositories.ErrCandidateNotFound)

	resp, body := ta.do(t, http.MethodGet, "/api/v1/admin/candidates/"+id.String(), "", true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "CRUD Developer", body["tierResult"].(map[string]interface{})["tierName"])

	resp, _ = ta.do(t, http.MethodGet, "/api/v1/admin/candidates/"+missing.String(), "", true)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = ta.do(t, http.MethodGet, "/api/v1/admin/candidates/not-a-uuid", "", true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDelete_InvalidatesCaches(t *testing.T) {
	ta := newTestApp(t)
	id := uuid.New()
	ta.repo.On("Delete", id).Return(nil)
	ta.stats.On("Invalidate", mock.Anything).Return(nil)
	ta.similarity.On("Remove", mock.Anything, id).Return(nil)

	resp, body := ta.do(t, http.MethodDelete, "/api/v1/admin/candidates/"+id.String(), "", true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	ta.stats.AssertExpectations(t)
	ta.similarity.AssertExpectations(t)
}

func TestHandleSimilar_Disabled(t *testing.T) {
	ta := newTestApp(t)
	ta.similarity.On("Similar", mock.Anything, mock.Anything, 5).Return(nil, services.ErrSimilarityDisabled)

	resp, _ := ta.do(t, http.MethodGet, "/api/v1/admin/candidates/"+uuid.NewString()+"/similar", "", true)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleGetStats_Error(t *testing.T) {
	ta := newTestApp(t)
	ta.stats.On("Get", mock.Anything).Return(nil, errors.New("db down"))

	resp, body := ta.do(t, http.MethodGet, "/api/v1/admin/stats", "", true)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch statistics", body["error"])
}

func TestHandleLogin_SetsSessionCookie(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.On("Login", mock.Anything, models.LoginRequest{Email: "root@example.com", Password: "pw"}).
		Return(&models.LoginResponse{Token: "tok", ExpiresIn: 3600, Admin: &models.Admin{Email: "root@example.com"}}, nil)

	resp, body := ta.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"root@example.com","password":"pw"}`, false)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "tok", body["token"])
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "session=tok")
	assert.NotContains(t, body["admin"], "password")
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.On("Login", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidCredentials)

	resp, _ := ta.do(t, http.MethodPost, "/api/v1/auth/login", `{"email":"x","password":"y"}`, false)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHandleSignup_Errors(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{repositories.ErrAdminExists, fiber.StatusConflict},
		{services.ErrSignupDisabled, fiber.StatusForbidden},
		{services.ErrMissingFields, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		ta := newTestApp(t)
		ta.auth.On("Signup", mock.Anything, mock.Anything).Return(nil, tt.err)

		resp, _ := ta.do(t, http.MethodPost, "/api/v1/auth/signup", `{"name":"a","email":"b","password":"c"}`, false)
		assert.Equal(t, tt.wantCode, resp.StatusCode, tt.err.Error())
	}
}

func TestHandleLogout(t *testing.T) {
	ta := newTestApp(t)
	ta.auth.On("Logout", mock.Anything, validToken).Return(nil)

	resp, _ := ta.do(t, http.MethodPost, "/api/v1/auth/logout", "", true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	ta.auth.AssertExpectations(t)
}
