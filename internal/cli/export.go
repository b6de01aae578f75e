package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write candidates as CSV to stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		filter, err := exportFilter(viper.GetString("export-tier"), viper.GetString("export-search"))
		if err != nil {
			return err
		}

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		_, db, err := openDatabase(log)
		if err != nil {
			return err
		}

		candidates, err := repositories.NewCandidateRepository(db).List(filter)
		if err != nil {
			return err
		}
		return services.WriteCandidatesCSV(cmd.OutOrStdout(), candidates)
	},
}

func init() {
	exportCmd.Flags().String("tier", "all", "tier 0-4 or all")
	exportCmd.Flags().String("search", "", "case-insensitive name or email match")

	_ = viper.BindPFlag("export-tier", exportCmd.Flags().Lookup("tier"))
	_ = viper.BindPFlag("export-search", exportCmd.Flags().Lookup("search"))
}

func exportFilter(tierFlag, search string) (models.CandidateFilter, error) {
	filter := models.CandidateFilter{Search: search}
	if tierFlag == "" || tierFlag == "all" {
		return filter, nil
	}
	n, err := strconv.Atoi(tierFlag)
	if err != nil || n < 0 || n > 4 {
		return filter, fmt.Errorf("invalid tier %q: want 0-4 or all", tierFlag)
	}
	filter.Tier = &n
	return filter, nil
}
