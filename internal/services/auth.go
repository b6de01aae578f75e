package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
)

const (
	bcryptCost    = 12
	sessionPrefix = "assessment:session:"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSignupDisabled     = errors.New("admin signup is disabled")
	ErrMissingFields      = errors.New("name, email and password are required")
)

type AuthService interface {
	CreateAdmin(ctx context.Context, req models.SignupRequest) (*models.Admin, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.Admin, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Admin, error)
}

type authService struct {
	repo          repositories.AdminRepository
	rdb           *redis.Client
	sessionTTL    time.Duration
	signupEnabled bool
}

func NewAuthService(repo repositories.AdminRepository, rdb *redis.Client, sessionTTL time.Duration, signupEnabled bool) AuthService {
	return &authService{
		repo:          repo,
		rdb:           rdb,
		sessionTTL:    sessionTTL,
		signupEnabled: signupEnabled,
	}
}

// CreateAdmin hashes the password and stores a new admin regardless of the
// signup switch.
func (s *authService) CreateAdmin(_ context.Context, req models.SignupRequest) (*models.Admin, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}
	if err := s.repo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *authService) Signup(ctx context.Context, req models.SignupRequest) (*models.Admin, error) {
	if !s.signupEnabled {
		return nil, ErrSignupDisabled
	}
	return s.CreateAdmin(ctx, req)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.repo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionPrefix+token, admin.ID.String(), s.sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.sessionTTL.Seconds()),
		Admin:     admin,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*models.Admin, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	adminID, err := s.rdb.Get(ctx, sessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	id, err := uuid.Parse(adminID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	admin, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	return admin, nil
}
