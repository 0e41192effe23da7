package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/krakosik/voting-api/internal/client"
	"github.com/krakosik/voting-api/internal/controller"
	"github.com/krakosik/voting-api/internal/repository"
	"github.com/krakosik/voting-api/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetBool("seed")

		clients := client.NewClients(cfg)
		defer clients.Close()

		repositories := repository.NewRepositories(clients.Database())
		services := service.NewServices(repositories)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if seed {
			if _, err := services.Seed().Seed(ctx, cfg.SeedEvents, time.Now().UnixNano()); err != nil {
				return fmt.Errorf("seeding database: %w", err)
			}
		}

		e := controller.NewServer(services)

		errCh := make(chan error, 1)
		go func() {
			logrus.Infof("Listening on port %d", cfg.Port)
			if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logrus.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Bool("seed", false, "Seed demo data before serving")
	serveCmd.Flags().Int("events", 0, "Number of random events to seed (env SEED_EVENTS)")
}
