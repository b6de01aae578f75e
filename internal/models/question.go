package models

import "github.com/kikoolz/desishub-assessment-app/internal/tier"

type QuestionType string

const (
	QuestionWelcome        QuestionType = "welcome"
	QuestionPersonalInfo   QuestionType = "personal-info"
	QuestionSingleChoice   QuestionType = "single-choice"
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionCompletion     QuestionType = "completion"
)

type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Question struct {
	ID            int              `json:"id"`
	Type          QuestionType     `json:"type"`
	Field         string           `json:"field,omitempty"`
	Title         string           `json:"title,omitempty"`
	Question      string           `json:"question,omitempty"`
	Subtitle      string           `json:"subtitle,omitempty"`
	Description   string           `json:"description,omitempty"`
	Options       []QuestionOption `json:"options,omitempty"`
	AllowMultiple bool             `json:"allowMultiple,omitempty"`
	Required      bool             `json:"required,omitempty"`
	Fields        []string         `json:"fields,omitempty"`
	Action        string           `json:"action,omitempty"`
}

// Questions returns the assessment form in display order. Option values are
// the tier package vocabulary.
func Questions() []Question {
	return []Question{
		{
			ID:          1,
			Type:        QuestionWelcome,
			Title:       "Welcome to Desishub Technical Assessment",
			Description: "This assessment will help us understand your skill level. It takes about 3-5 minutes.",
			Action:      "Start Assessment",
		},
		{
			ID:     2,
			Type:   QuestionPersonalInfo,
			Title:  "Let's start with your basic information",
			Fields: []string{"name", "email", "phone", "linkedin"},
		},
		{
			ID:       3,
			Type:     QuestionMultipleChoice,
			Field:    "webTechnologies",
			Question: "What web technologies do you know?",
			Subtitle: "Select all that apply",
			Options: []QuestionOption{
				{Value: tier.TechHTML, Label: "HTML", Icon: "🌐"},
				{Value: tier.TechCSS, Label: "CSS", Icon: "🎨"},
				{Value: tier.TechJavaScript, Label: "JavaScript", Icon: "⚡"},
				{Value: tier.TechReact, Label: "React", Icon: "⚛️"},
				{Value: tier.TechNextJS, Label: "Next.js", Icon: "▲"},
			},
			AllowMultiple: true,
			Required:      true,
		},
		{
			ID:       4,
			Type:     QuestionSingleChoice,
			Field:    "canBuildCRUD",
			Question: "Can you build a CRUD application?",
			Options: []QuestionOption{
				{Value: string(tier.CRUDNone), Label: "No, I haven't built one yet", Icon: "📚"},
				{Value: string(tier.CRUDWithoutDB), Label: "Yes, but without database integration", Icon: "🔨"},
				{Value: string(tier.CRUDWithDB), Label: "Yes, with database integration", Icon: "🚀"},
			},
			Required: true,
		},
		{
			ID:       5,
			Type:     QuestionSingleChoice,
			Field:    "canImplementAuth",
			Question: "Can you implement authentication?",
			Options: []QuestionOption{
				{Value: string(tier.AuthNone), Label: "No", Icon: "❌"},
				{Value: string(tier.AuthBasic), Label: "Yes, basic password authentication only", Icon: "🔐"},
				{Value: string(tier.AuthOAuth), Label: "Yes, with both password and OAuth (Google/GitHub)", Icon: "✅"},
			},
			Required: true,
		},
		{
			ID:       6,
			Type:     QuestionMultipleChoice,
			Field:    "backendFrameworks",
			Question: "What backend frameworks do you know?",
			Subtitle: "Select all that apply",
			Options: []QuestionOption{
				{Value: tier.FrameworkNone, Label: "None", Icon: "⭕"},
				{Value: tier.FrameworkExpress, Label: "Express.js", Icon: "🚂"},
				{Value: tier.FrameworkHono, Label: "Hono", Icon: "🔥"},
				{Value: tier.FrameworkLaravel, Label: "Laravel", Icon: "🎯"},
			},
			AllowMultiple: true,
			Required:      true,
		},
		{
			ID:       7,
			Type:     QuestionSingleChoice,
			Field:    "knowsGolang",
			Question: "Do you know Golang?",
			Options: []QuestionOption{
				{Value: string(tier.GolangNone), Label: "No", Icon: "❌"},
				{Value: string(tier.GolangBasics), Label: "Yes, basics", Icon: "📖"},
				{Value: string(tier.GolangBuildAPIs), Label: "Yes, can build APIs with Go", Icon: "🦫"},
			},
			Required: true,
		},
		{
			ID:       8,
			Type:     QuestionSingleChoice,
			Field:    "hasDeployed",
			Question: "Have you deployed applications to production?",
			Options: []QuestionOption{
				{Value: string(tier.DeployedNone), Label: "No", Icon: "❌"},
				{Value: string(tier.DeployedFrontendOnly), Label: "Yes, frontend only", Icon: "🎨"},
				{Value: string(tier.DeployedFullstack), Label: "Yes, full-stack applications", Icon: "🌐"},
			},
			Required: true,
		},
		{
			ID:       9,
			Type:     QuestionSingleChoice,
			Field:    "canBuildAuthAPI",
			Question: "Can you build authenticated CRUD APIs with documentation?",
			Options: []QuestionOption{
				{Value: string(tier.AuthAPINone), Label: "No", Icon: "❌"},
				{Value: string(tier.AuthAPINextJSOnly), Label: "With Next.js only", Icon: "▲"},
				{Value: string(tier.AuthAPIExpressHono), Label: "With Express/Hono/Laravel", Icon: "🚀"},
				{Value: string(tier.AuthAPIMultiple), Label: "With multiple frameworks", Icon: "⭐"},
			},
			Required: true,
		},
		{
			ID:          10,
			Type:        QuestionCompletion,
			Title:       "Assessment Complete! 🎉",
			Description: "Thank you for completing the assessment. We are calculating your tier...",
		},
	}
}
