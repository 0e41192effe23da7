package main

import (
	"github.com/krakosik/voting-api/internal/client"
	"github.com/krakosik/voting-api/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients := client.NewClients(cfg)
		defer clients.Close()

		if err := repository.Migrate(clients.Database()); err != nil {
			return err
		}
		logrus.Info("Database schema ready")
		return nil
	},
}
