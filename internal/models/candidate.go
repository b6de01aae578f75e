package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

type NotificationStatus string

const (
	NotificationPending    NotificationStatus = "pending"
	NotificationProcessing NotificationStatus = "processing"
	NotificationSent       NotificationStatus = "sent"
	NotificationSkipped    NotificationStatus = "skipped"
	NotificationFailed     NotificationStatus = "failed"
)

// Candidate stores the raw answers next to the denormalised tier result.
type Candidate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"type:text;not null" json:"name"`
	Email    string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Phone    string    `gorm:"type:text;not null" json:"phone"`
	LinkedIn *string   `gorm:"type:text" json:"linkedIn,omitempty"`

	WebTechnologies   pq.StringArray `gorm:"type:text[]" json:"webTechnologies"`
	CanBuildCRUD      string         `gorm:"type:text;not null" json:"canBuildCRUD"`
	CanImplementAuth  string         `gorm:"type:text;not null" json:"canImplementAuth"`
	BackendFrameworks pq.StringArray `gorm:"type:text[]" json:"backendFrameworks"`
	KnowsGolang       string         `gorm:"type:text;not null" json:"knowsGolang"`
	HasDeployed       string         `gorm:"type:text;not null" json:"hasDeployed"`
	CanBuildAuthAPI   string         `gorm:"type:text;not null" json:"canBuildAuthAPI"`

	AssignedTier       int            `gorm:"not null;index" json:"assignedTier"`
	TierName           string         `gorm:"type:text;not null" json:"tierName"`
	TierDescription    string         `gorm:"type:text;not null" json:"tierDescription"`
	Recommendations    pq.StringArray `gorm:"type:text[]" json:"recommendations"`
	ClassificationRule string         `gorm:"type:text;not null" json:"classificationRule"`

	NotificationStatus NotificationStatus `gorm:"type:text;not null;default:'pending';index" json:"notificationStatus"`
	NotificationError  *string            `gorm:"type:text" json:"notificationError,omitempty"`
	ReviewerSummary    *string            `gorm:"type:text" json:"reviewerSummary,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// Answers rebuilds the classification input from the stored columns.
func (c *Candidate) Answers() tier.Answers {
	return tier.Answers{
		WebTechnologies:   []string(c.WebTechnologies),
		CanBuildCRUD:      tier.CRUDLevel(c.CanBuildCRUD),
		CanImplementAuth:  tier.AuthLevel(c.CanImplementAuth),
		BackendFrameworks: []string(c.BackendFrameworks),
		KnowsGolang:       tier.GolangLevel(c.KnowsGolang),
		HasDeployed:       tier.DeploymentLevel(c.HasDeployed),
		CanBuildAuthAPI:   tier.AuthAPILevel(c.CanBuildAuthAPI),
	}
}

// TierResult returns the stored result fields as a tier.Result.
func (c *Candidate) TierResult() tier.Result {
	return tier.Result{
		Tier:            c.AssignedTier,
		TierName:        c.TierName,
		Description:     c.TierDescription,
		Recommendations: []string(c.Recommendations),
	}
}
