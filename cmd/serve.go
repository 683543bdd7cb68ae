package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/ledger"
	"github.com/tally-finance/backend/internal/live"
	"github.com/tally-finance/backend/internal/metrics"
	"github.com/tally-finance/backend/internal/router"
	"github.com/tally-finance/backend/internal/store"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagListen, "listen", "l", "", "Listen address, overrides server.listen")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	url, err := cfg.URL()
	if err != nil {
		return err
	}

	db, err := connect(cfg)
	if err != nil {
		return err
	}

	st := store.New(db, store.NewHub())
	defer func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("Closing database")
		}
	}()

	manager := live.NewManager(newEngine(cfg, st), cfg.ManagerOptions())
	defer manager.Close()

	if err := metrics.Register(); err != nil {
		return err
	}
	defer metrics.Unregister()

	r, teardown, err := router.Config(url, cfg.CORSAllowOrigins())
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{
		Store:   st,
		Manager: manager,
		Ledger:  ledger.New(st),
	}, r.Group(url.Path), cfg.Server.EnablePprof)

	listen := cfg.Server.Listen
	if flagListen != "" {
		listen = flagListen
	}

	srv := &http.Server{
		Addr:              listen,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("listen", listen).Str("url", url.String()).Msg("Serving")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
