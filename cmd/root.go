// Package cmd implements the tally CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tally-finance/backend/internal/config"
	"github.com/tally-finance/backend/internal/live"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"gorm.io/gorm"
)

var flagConfig string

// cfg is loaded before any subcommand runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "tally",
	Short:         "Recurring transactions, bill reminders and budget alerts",
	Long:          "The tally backend materializes recurring transactions, sends bill reminders and budget alerts and serves the REST API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		c, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = c

		setupLogging(cfg)
		return nil
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", fmt.Sprintf("Config file (default %s)", config.Path()))
}

func setupLogging(c config.Config) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(c.Server.GinMode)

	// If the log format is not set, it defaults to human readable for
	// development and JSON for release
	output := io.Writer(os.Stdout)
	if (c.Log.Format == "" && gin.IsDebugging()) || c.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect opens the configured database and migrates it.
func connect(c config.Config) (*gorm.DB, error) {
	dbConfig := c.DatabaseConfig()

	if dbConfig.Host == "" {
		err := os.MkdirAll(filepath.Dir(dbConfig.Path), os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return models.Connect(dbConfig.Dialector())
}

func newEngine(c config.Config, st *store.Store) *live.Engine {
	return live.NewEngine(st, live.Options{
		CatchUp:  c.CatchUp(),
		Defaults: c.DefaultSettings(),
		Location: c.Location(),
	})
}
