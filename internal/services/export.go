package services

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
)

var exportHeader = []string{"Name", "Email", "Phone", "Tier", "Date"}

// WriteCandidatesCSV writes the admin export: one row per candidate with the
// tier as "Tier N" and the submission date as YYYY-MM-DD.
func WriteCandidatesCSV(w io.Writer, candidates []models.Candidate) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, c := range candidates {
		record := []string{
			c.Name,
			c.Email,
			c.Phone,
			fmt.Sprintf("Tier %d", c.AssignedTier),
			c.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
