package database

import (
	"fmt"
	"strings"

	"trading-journal/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DSN builds the sqlite3 data source name for a database file.
// Foreign keys are off by default in SQLite; the DSN turns them on for every pooled connection.
func DSN(path string) string {
	if strings.Contains(path, "?") {
		return "file:" + path + "&_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on"
}

// NewDatabase applies pending migrations and opens a gorm connection to the journal database.
func NewDatabase(cfg *config.Database, log *zap.Logger) (*gorm.DB, error) {
	version, err := Migrate(cfg.Path)
	if err != nil {
		return nil, err
	}
	log.Info("Database schema is up to date", zap.String("path", cfg.Path), zap.Uint("version", version))

	db, err := gorm.Open(sqlite.Open(DSN(cfg.Path)), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
