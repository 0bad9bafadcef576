package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trading-journal/internal/commands"
	"trading-journal/internal/config"
	"trading-journal/internal/database"
	"trading-journal/internal/server"
	"trading-journal/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and serve the journal commands",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log := bootstrap()
	defer func() { _ = log.Sync() }()
	log.Info("Configuration loaded", zap.String("mode", cfg.Commands.Mode))

	// A database that cannot be migrated is fatal.
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	journal, err := newJournal(cfg.Commands.Mode, db, log)
	if err != nil {
		log.Fatal("Failed to set up commands", zap.Error(err))
	}

	router := commands.NewRouter(log)
	commands.Register(router, journal)

	srv := server.NewServer(router, log, cfg.Server.Host, cfg.Server.Port, cfg.App.Name, cfg.Commands.Mode)
	serveErr := srv.Start()

	select {
	case err := <-serveErr:
		log.Fatal("Command server could not run", zap.Error(err))
	case <-ctx.Done():
		log.Info("Shutdown signal received, gracefully shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("Command server forced to shutdown", zap.Error(err))
	}

	log.Info("Journal backend has been shut down.")
}

// newJournal picks the command behaviour for mode.
func newJournal(mode string, db *gorm.DB, log *zap.Logger) (commands.Journal, error) {
	switch mode {
	case config.ModeStub, "":
		return commands.Stub{}, nil
	case config.ModeStore:
		return commands.NewPersistent(storage.NewStore(db), log), nil
	default:
		return nil, fmt.Errorf("unknown commands mode %q", mode)
	}
}
