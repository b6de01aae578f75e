package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kikoolz/desishub-assessment-app/internal/config"
	"github.com/kikoolz/desishub-assessment-app/internal/logger"
)

const app = "assessctl"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "assessctl runs tier classification and admin chores against the assessment database",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(classifyCmd, createAdminCmd, exportCmd, reindexCmd)
}

func initConfig() {
	viper.SetEnvPrefix("ASSESSCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger() (*zap.Logger, error) {
	level := "info"
	if viper.GetBool("debug") {
		level = "debug"
	}
	return logger.New("development", level)
}

// openDatabase loads the service configuration and connects with it.
func openDatabase(log *zap.Logger) (*config.Config, *gorm.DB, error) {
	cfg := config.Load()
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}
