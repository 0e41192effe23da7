package main

import (
	"time"

	"github.com/krakosik/voting-api/internal/client"
	"github.com/krakosik/voting-api/internal/repository"
	"github.com/krakosik/voting-api/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with demo events and votes",
	RunE: func(cmd *cobra.Command, args []string) error {
		randomSeed, _ := cmd.Flags().GetInt64("random-seed")
		if randomSeed == 0 {
			randomSeed = time.Now().UnixNano()
		}

		clients := client.NewClients(cfg)
		defer clients.Close()

		services := service.NewServices(repository.NewRepositories(clients.Database()))
		report, err := services.Seed().Seed(cmd.Context(), cfg.SeedEvents, randomSeed)
		if err != nil {
			return err
		}

		logrus.Infof("Created %d events and %d votes", report.EventsCreated, report.VotesCreated)
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("events", 0, "Number of random events to seed (env SEED_EVENTS)")
	seedCmd.Flags().Int64("random-seed", 0, "Seed for the fake data generator, 0 picks one")
}
