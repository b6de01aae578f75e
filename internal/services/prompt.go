package services

import (
	"fmt"
	"strings"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildReviewerSummaryPrompt asks for a short note for the hiring team. The
// tier is already decided and is passed in as fact.
func (pb *PromptBuilder) BuildReviewerSummaryPrompt(candidate *models.Candidate) string {
	return fmt.Sprintf(`You are a senior engineer helping a hiring team triage developer candidates.

The candidate has already been placed in a skill tier by a fixed rule set. Do NOT change, question or re-score the tier.

CANDIDATE PROFILE:
%s

Write 2-3 sentences for the reviewer: what the candidate can most likely take on today, and the single biggest gap to probe in an interview. Plain text only, no headings, no lists.`,
		pb.BuildProfileText(candidate))
}

// BuildProfileText renders the answers and tier as the text used for both
// summaries and similarity embeddings.
func (pb *PromptBuilder) BuildProfileText(candidate *models.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Assigned tier: %d (%s)\n", candidate.AssignedTier, candidate.TierName)
	fmt.Fprintf(&b, "Web technologies: %s\n", joinOrNone(candidate.WebTechnologies))
	fmt.Fprintf(&b, "Backend frameworks: %s\n", joinOrNone(candidate.BackendFrameworks))
	fmt.Fprintf(&b, "Can build CRUD: %s\n", candidate.CanBuildCRUD)
	fmt.Fprintf(&b, "Can implement auth: %s\n", candidate.CanImplementAuth)
	fmt.Fprintf(&b, "Knows Go: %s\n", candidate.KnowsGolang)
	fmt.Fprintf(&b, "Has deployed: %s\n", candidate.HasDeployed)
	fmt.Fprintf(&b, "Can build authenticated APIs: %s", candidate.CanBuildAuthAPI)
	return b.String()
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
