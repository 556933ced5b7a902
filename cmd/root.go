package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "soundwave",
	Short: "Backend for the soundwave music player",
	Long: `Serves the REST API behind the soundwave music player: accounts,
playlists, favorites and the follow graph.

Settings come from an optional TOML file and are overridden by the
environment (a .env file in the working directory is loaded first).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
