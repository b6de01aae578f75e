package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

var badgeColors = map[int]string{
	0: "#EF4444",
	1: "#3B82F6",
	2: "#10B981",
	3: "#F59E0B",
	4: "#8B5CF6",
}

var tierEmailTemplate = template.Must(template.New("tier-email").Parse(`
<div style="font-family: Inter, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; background:#f7fafc; padding:24px;">
  <div style="max-width:640px;margin:0 auto;background:#ffffff;border-radius:12px;box-shadow:0 4px 12px rgba(0,0,0,0.06);overflow:hidden;">
    <div style="padding:24px 24px 0 24px;">
      <h1 style="margin:0 0 8px 0; font-size:20px; color:#111827;">Hi {{.Name}},</h1>
      <p style="margin:0; color:#4B5563; font-size:14px;">Thanks for completing the Desishub assessment. Here are your results:</p>
    </div>

    <div style="padding:24px; text-align:center;">
      <div style="display:inline-flex;align-items:center;gap:10px;background:{{.BadgeColor}};color:#fff;padding:10px 16px;border-radius:9999px;font-weight:700;">
        <span>Tier {{.Tier}}</span>
        <span style="opacity:.9">{{.TierName}}</span>
      </div>
      <p style="margin:16px 0 0 0; color:#374151; font-size:15px; line-height:1.6;">{{.Description}}</p>
    </div>

    <div style="padding:0 24px 24px 24px;">
      <h3 style="margin:0 0 8px 0; color:#111827; font-size:16px;">Recommended next steps</h3>
      <ol style="margin:0; padding-left:18px; color:#374151; font-size:14px;">
        {{- range .Recommendations}}
        <li style="margin:6px 0;">{{.}}</li>
        {{- end}}
      </ol>
    </div>

    <div style="padding:16px 24px;border-top:1px solid #E5E7EB;color:#6B7280;font-size:12px;">
      <p style="margin:0;">Desishub • Candidate Assessment Results</p>
    </div>
  </div>
</div>`))

type tierEmailData struct {
	Name            string
	Tier            int
	TierName        string
	Description     string
	Recommendations []string
	BadgeColor      template.CSS
}

// TierEmailSubject is the subject line of the result email.
func TierEmailSubject(candidate *models.Candidate) string {
	return fmt.Sprintf("Your Desishub Assessment Result – Tier %d (%s)", candidate.AssignedTier, candidate.TierName)
}

// RenderTierEmail builds the result email for a stored candidate.
func RenderTierEmail(candidate *models.Candidate) (*Message, error) {
	name := candidate.Name
	if name == "" {
		name = "there"
	}

	color, ok := badgeColors[candidate.AssignedTier]
	if !ok {
		color = badgeColors[0]
	}

	var body bytes.Buffer
	err := tierEmailTemplate.Execute(&body, tierEmailData{
		Name:            name,
		Tier:            candidate.AssignedTier,
		TierName:        candidate.TierName,
		Description:     candidate.TierDescription,
		Recommendations: []string(candidate.Recommendations),
		BadgeColor:      template.CSS(color),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render tier email: %w", err)
	}

	return &Message{
		To:      candidate.Email,
		Subject: TierEmailSubject(candidate),
		HTML:    body.String(),
	}, nil
}
