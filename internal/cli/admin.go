package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kikoolz/desishub-assessment-app/internal/models"
	"github.com/kikoolz/desishub-assessment-app/internal/repositories"
	"github.com/kikoolz/desishub-assessment-app/internal/services"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account even when public signup is disabled",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		cfg, db, err := openDatabase(log)
		if err != nil {
			return err
		}

		auth := services.NewAuthService(repositories.NewAdminRepository(db), nil, cfg.Auth.SessionTTL, false)
		admin, err := auth.CreateAdmin(cmd.Context(), models.SignupRequest{
			Name:     viper.GetString("admin-name"),
			Email:    viper.GetString("admin-email"),
			Password: viper.GetString("admin-password"),
		})
		if err != nil {
			return fmt.Errorf("creating admin: %w", err)
		}

		log.Info("✅ Admin created", zap.String("id", admin.ID.String()), zap.String("email", admin.Email))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().String("email", "", "admin email")
	createAdminCmd.Flags().String("password", "", "admin password")
	createAdminCmd.Flags().String("name", "", "admin display name")

	_ = viper.BindPFlag("admin-email", createAdminCmd.Flags().Lookup("email"))
	_ = viper.BindPFlag("admin-password", createAdminCmd.Flags().Lookup("password"))
	_ = viper.BindPFlag("admin-name", createAdminCmd.Flags().Lookup("name"))
}
