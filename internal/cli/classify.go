package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/tier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [file|-]",
	Short: "Classify a JSON answer set without touching the database",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening answers: %w", err)
			}
			defer f.Close()
			in = f
		}
		return runClassify(in, cmd.OutOrStdout())
	},
}

func runClassify(in io.Reader, out io.Writer) error {
	// Same normalisation as a web submission: absent fields take the
	// lowest-capability values.
	var req models.AssessmentRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decoding answers: %w", err)
	}

	answers := req.Answers()
	if err := tier.Validate(answers); err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(tier.Evaluate(answers))
}
