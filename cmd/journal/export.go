package main

import (
	"context"
	"io"
	"os"

	"trading-journal/internal/database"
	"trading-journal/internal/export"
	"trading-journal/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportAccountID int64
	exportOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an account's trades as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log := bootstrap()
		defer func() { _ = log.Sync() }()

		db, err := database.NewDatabase(&cfg.Database, log)
		if err != nil {
			return err
		}
		defer func() { _ = database.Close(db) }()

		trades, err := storage.NewStore(db).ListTrades(context.Background(), exportAccountID)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteTradesCSV(out, trades); err != nil {
			return err
		}
		log.Info("Exported trades", zap.Int64("account_id", exportAccountID), zap.Int("count", len(trades)))
		return nil
	},
}

func init() {
	exportCmd.Flags().Int64Var(&exportAccountID, "account", 0, "Account ID whose trades are exported")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")
	_ = exportCmd.MarkFlagRequired("account")
}
