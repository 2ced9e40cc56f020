// Package cli provides the command-line interface for filmfinder.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/filmfinder/internal/app"
)

var (
	// Global flags
	configPath string
	logLevel   string

	// Shared by commands that support machine-readable output
	jsonOutput bool

	// application is built in PersistentPreRunE for every subcommand.
	application *app.App

	// newApp builds the application for subcommands; tests replace it.
	newApp = func() (*app.App, error) {
		return app.New(app.Options{
			ConfigPath: configPath,
			LogLevel:   logLevel,
			LogStderr:  true,
		})
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "filmfinder",
	Short: "Search movies and keep a watchlist",
	Long: `FilmFinder searches the OMDb movie catalog, shows details for a title and
keeps a personal watchlist and a short history of recent searches.

Run without arguments to open the terminal interface.`,
	Version:       app.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cmd.Context(), app.Options{ConfigPath: configPath, LogLevel: logLevel})
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The TUI builds its own application with file-only logging.
		if cmd == cmd.Root() || cmd.Name() == "help" {
			return nil
		}
		var err error
		application, err = newApp()
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if application == nil {
			return nil
		}
		err := application.Close()
		application = nil
		return err
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when a command fails.
	if application != nil {
		_ = application.Close()
		application = nil
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/filmfinder/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detailsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchlistCmd)
	rootCmd.AddCommand(logsCmd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
