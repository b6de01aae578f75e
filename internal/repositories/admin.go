package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

type AdminRepository interface {
	Create(admin *models.Admin) error
	FindByEmail(email string) (*models.Admin, error)
	FindByID(id uuid.UUID) (*models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(admin *models.Admin) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	if err := r.db.Create(admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAdminExists
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *adminRepository) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}
