package cmd

import (
	"errors"
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/app"
	"github.com/spf13/cobra"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not create or update tables on startup")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}

	if !skipMigrate {
		if err := application.Migrate(); err != nil {
			return err
		}
	}

	application.Log.WithField("port", cfg.Server.Port).Info("server starting")

	if err := application.Router().Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
