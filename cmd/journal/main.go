package main

import (
	"fmt"
	"os"

	"trading-journal/internal/config"
	"trading-journal/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Backend of the trading journal desktop app",
	Long: `journal owns the trading journal's SQLite database (profile, accounts, trades).

It applies the schema migrations at startup and serves the journal commands
(save_profile, get_profile, save_account, get_accounts, save_trade, get_trades)
to the UI over a local HTTP endpoint.`,
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./configs", "Directory containing config.yml")
	rootCmd.AddCommand(serveCmd, migrateCmd, invokeCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the logger.
// Nothing can be logged before this succeeds, so failures go to stderr.
func bootstrap() (config.Config, *zap.Logger) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, log
}
