package storage

import (
	"context"
	"errors"
	"fmt"

	"trading-journal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileID is the primary key of the one profile row.
const profileID = 1

// profileRow maps the profile table, which carries an id column the wire Profile does not.
type profileRow struct {
	ID             int64 `gorm:"column:id;primaryKey"`
	models.Profile `gorm:"embedded"`
}

func (profileRow) TableName() string {
	return "profile"
}

// Store reads and writes journal entities in the migrated SQLite schema.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on top of an open, migrated database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveProfile inserts the profile or replaces the existing one.
func (s *Store) SaveProfile(ctx context.Context, p models.Profile) error {
	row := profileRow{ID: profileID, Profile: p}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil when none has been saved yet.
func (s *Store) GetProfile(ctx context.Context) (*models.Profile, error) {
	var row profileRow
	err := s.db.WithContext(ctx).First(&row, profileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &row.Profile, nil
}

// CreateAccount inserts a new account and sets its storage-assigned ID.
func (s *Store) CreateAccount(ctx context.Context, a *models.Account) error {
	a.ID = nil
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// ListAccounts returns every account ordered by ID.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	if err := s.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// CreateTrade inserts a new trade and sets its storage-assigned ID.
// The referenced account must exist.
func (s *Store) CreateTrade(ctx context.Context, t *models.Trade) error {
	t.ID = nil
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create trade for account %d: %w", t.AccountID, err)
	}
	return nil
}

// ListTrades returns the trades of one account ordered by date, then ID.
func (s *Store) ListTrades(ctx context.Context, accountID int64) ([]models.Trade, error) {
	trades := make([]models.Trade, 0)
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date").Order("id").
		Find(&trades).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for account %d: %w", accountID, err)
	}
	return trades, nil
}
