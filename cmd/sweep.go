package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tally-finance/backend/internal/store"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Materialize due entries and send reminders and alerts for all users",
	Long:  "Runs materialization, bill reminder dispatch and budget alert dispatch once for every user. Meant to be run periodically, e.g. from cron.",
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, _ []string) error {
	db, err := connect(cfg)
	if err != nil {
		return err
	}

	st := store.New(db, store.NewHub())
	defer st.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result, err := newEngine(cfg, st).Sweep(ctx)

	log.Info().
		Int("users", result.Users).
		Int("entries", result.Entries).
		Int("reminders", result.Reminders).
		Int("alerts", result.Alerts).
		Msg("Sweep")

	if err != nil {
		return fmt.Errorf("sweep finished with errors: %w", err)
	}
	return nil
}
