package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

func TestAssessmentRequest_AnswersFillsLowestDefaults(t *testing.T) {
	req := &AssessmentRequest{Name: "Ada", Email: "ada@example.com", Phone: "1"}
	assert.Equal(t, tier.Lowest(), req.Answers())
	assert.Equal(t, tier.RuleFallback, tier.Evaluate(req.Answers()).Rule)
}

func TestAssessmentRequest_AnswersKeepsProvidedValues(t *testing.T) {
	req := &AssessmentRequest{
		WebTechnologies:   []string{"nextjs"},
		BackendFrameworks: []string{"express"},
		KnowsGolang:       " can-build-apis ",
		CanBuildAuthAPI:   "multiple",
		CanBuildCRUD:      "",
	}
	a := req.Answers()
	assert.Equal(t, tier.GolangBuildAPIs, a.KnowsGolang)
	assert.Equal(t, tier.CRUDNone, a.CanBuildCRUD)
	assert.Equal(t, 4, tier.Classify(a).Tier)
}

func TestCandidate_RoundTripsAnswers(t *testing.T) {
	a := tier.Lowest()
	a.WebTechnologies = []string{"react"}
	a.CanBuildCRUD = tier.CRUDWithDB

	c := &Candidate{
		WebTechnologies:   a.WebTechnologies,
		CanBuildCRUD:      string(a.CanBuildCRUD),
		CanImplementAuth:  string(a.CanImplementAuth),
		BackendFrameworks: a.BackendFrameworks,
		KnowsGolang:       string(a.KnowsGolang),
		HasDeployed:       string(a.HasDeployed),
		CanBuildAuthAPI:   string(a.CanBuildAuthAPI),
	}
	assert.Equal(t, a, c.Answers())
}

func TestQuestions_SingleChoiceOptionsAreValidAnswers(t *testing.T) {
	for _, q := range Questions() {
		if q.Type != QuestionSingleChoice {
			continue
		}
		for _, opt := range q.Options {
			req := &AssessmentRequest{}
			switch q.Field {
			case "canBuildCRUD":
				req.CanBuildCRUD = opt.Value
			case "canImplementAuth":
				req.CanImplementAuth = opt.Value
			case "knowsGolang":
				req.KnowsGolang = opt.Value
			case "hasDeployed":
				req.HasDeployed = opt.Value
			case "canBuildAuthAPI":
				req.CanBuildAuthAPI = opt.Value
			default:
				t.Fatalf("unexpected single-choice field %q", q.Field)
			}
			assert.NoError(t, tier.Validate(req.Answers()), "%s=%s", q.Field, opt.Value)
		}
	}
}
