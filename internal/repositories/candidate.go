package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	List(filter models.CandidateFilter) ([]models.Candidate, error)
	Delete(id uuid.UUID) error
	ClaimNotification(id uuid.UUID) (bool, error)
	UpdateNotification(id uuid.UUID, status models.NotificationStatus, errMsg string) error
	UpdateReviewerSummary(id uuid.UUID, summary string) error
	FindPendingNotifications(limit int) ([]models.Candidate, error)
	ReleaseStaleClaims(before time.Time) (int64, error)
	EachBatch(size int, fn func(batch []models.Candidate) error) error
	CountByTier() ([]models.TierCount, error)
	CountSince(since time.Time) (int64, error)
}

// sortColumns maps the admin sortBy values to columns. Anything else falls
// back to created_at.
var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"name":         "name",
	"email":        "email",
	"assignedTier": "assigned_tier",
}

// likeEscaper makes search text match literally inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

func (r *candidateRepository) List(filter models.CandidateFilter) ([]models.Candidate, error) {
	query := r.db.Model(&models.Candidate{})

	if filter.Tier != nil {
		query = query.Where("assigned_tier = ?", *filter.Tier)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	var candidates []models.Candidate
	if err := query.Order(column + " " + direction).Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Candidate{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

// ClaimNotification moves a pending candidate to processing. It reports
// false when another worker already holds the job or it is finished.
func (r *candidateRepository) ClaimNotification(id uuid.UUID) (bool, error) {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ? AND notification_status = ?", id, models.NotificationPending).
		Updates(map[string]interface{}{
			"notification_status": models.NotificationProcessing,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return false, fmt.Errorf("failed to claim notification: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *candidateRepository) UpdateNotification(id uuid.UUID, status models.NotificationStatus, errMsg string) error {
	updates := map[string]interface{}{
		"notification_status": status,
		"notification_error":  nil,
		"updated_at":          time.Now(),
	}
	if errMsg != "" {
		updates["notification_error"] = errMsg
	}

	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepository) UpdateReviewerSummary(id uuid.UUID, summary string) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reviewer_summary": summary,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update reviewer summary: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *candidateRepository) FindPendingNotifications(limit int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("notification_status = ?", models.NotificationPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&candidates).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending notifications: %w", err)
	}
	return candidates, nil
}

// ReleaseStaleClaims puts rows stuck in processing since before back to
// pending so the poller retries them.
func (r *candidateRepository) ReleaseStaleClaims(before time.Time) (int64, error) {
	result := r.db.Model(&models.Candidate{}).
		Where("notification_status = ? AND updated_at < ?", models.NotificationProcessing, before).
		Updates(map[string]interface{}{
			"notification_status": models.NotificationPending,
			"updated_at":          time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to release stale claims: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// EachBatch walks every candidate in primary key order.
func (r *candidateRepository) EachBatch(size int, fn func(batch []models.Candidate) error) error {
	var batch []models.Candidate
	err := r.db.Model(&models.Candidate{}).
		FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error

	if err != nil {
		return fmt.Errorf("failed to iterate candidates: %w", err)
	}
	return nil
}

func (r *candidateRepository) CountByTier() ([]models.TierCount, error) {
	var counts []models.TierCount
	err := r.db.Model(&models.Candidate{}).
		Select("assigned_tier AS tier, COUNT(*) AS count").
		Group("assigned_tier").
		Order("assigned_tier ASC").
		Scan(&counts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to count candidates by tier: %w", err)
	}
	return counts, nil
}

func (r *candidateRepository) CountSince(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Candidate{}).
		Where("created_at >= ?", since).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count recent candidates: %w", err)
	}
	return count, nil
}
