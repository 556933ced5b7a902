package cmd

import (
	"github.com/Someshsw1109/soundwave-backend/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}

	if err := application.Migrate(); err != nil {
		return err
	}

	application.Log.Info("migrations applied")
	return nil
}
