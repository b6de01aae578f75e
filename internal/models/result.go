package models

import (
	"strings"

	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

// AssessmentRequest is the submission payload. Answer fields may be absent;
// Answers fills them with the lowest-capability values.
type AssessmentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedIn"`

	WebTechnologies   []string `json:"webTechnologies"`
	CanBuildCRUD      string   `json:"canBuildCRUD"`
	CanImplementAuth  string   `json:"canImplementAuth"`
	BackendFrameworks []string `json:"backendFrameworks"`
	KnowsGolang       string   `json:"knowsGolang"`
	HasDeployed       string   `json:"hasDeployed"`
	CanBuildAuthAPI   string   `json:"canBuildAuthAPI"`
}

// Answers normalises the request into classification input.
func (r *AssessmentRequest) Answers() tier.Answers {
	a := tier.Lowest()
	if r.WebTechnologies != nil {
		a.WebTechnologies = r.WebTechnologies
	}
	if r.BackendFrameworks != nil {
		a.BackendFrameworks = r.BackendFrameworks
	}
	if v := strings.TrimSpace(r.CanBuildCRUD); v != "" {
		a.CanBuildCRUD = tier.CRUDLevel(v)
	}
	if v := strings.TrimSpace(r.CanImplementAuth); v != "" {
		a.CanImplementAuth = tier.AuthLevel(v)
	}
	if v := strings.TrimSpace(r.KnowsGolang); v != "" {
		a.KnowsGolang = tier.GolangLevel(v)
	}
	if v := strings.TrimSpace(r.HasDeployed); v != "" {
		a.HasDeployed = tier.DeploymentLevel(v)
	}
	if v := strings.TrimSpace(r.CanBuildAuthAPI); v != "" {
		a.CanBuildAuthAPI = tier.AuthAPILevel(v)
	}
	return a
}

type AssessmentResponse struct {
	Success    bool        `json:"success"`
	Candidate  *Candidate  `json:"candidate"`
	TierResult tier.Result `json:"tierResult"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// CandidateFilter mirrors the admin list query string.
type CandidateFilter struct {
	Tier      *int
	Search    string
	SortBy    string
	SortOrder string
}

type TierCount struct {
	Tier  int   `json:"tier"`
	Count int64 `json:"count"`
}

type DashboardStats struct {
	TotalCandidates  int64       `json:"totalCandidates"`
	Tier4Count       int64       `json:"tier4Count"`
	WeeklyCount      int64       `json:"weeklyCount"`
	AvgTier          float64     `json:"avgTier"`
	TierDistribution []TierCount `json:"tierDistribution"`
}

type SimilarCandidate struct {
	ID    string  `json:"id"`
	Score float32 `json:"score"`
	Name  string  `json:"name"`
	Tier  int     `json:"tier"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
	Admin     *Admin `json:"admin"`
}
