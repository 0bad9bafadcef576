package main

import (
	"fmt"

	"trading-journal/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateStatusOnly bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log := bootstrap()
		defer func() { _ = log.Sync() }()

		if migrateStatusOnly {
			version, err := database.Version(cfg.Database.Path)
			if err != nil {
				log.Fatal("Failed to read schema version", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
			return
		}

		version, err := database.Migrate(cfg.Database.Path)
		if err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied migrations successfully. Schema version: %d\n", version)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatusOnly, "status", false, "Only print the current schema version")
}
