package commands

import (
	"context"

	"trading-journal/internal/models"

	"go.uber.org/zap"
)

// Store is the storage the Persistent journal writes through.
type Store interface {
	SaveProfile(ctx context.Context, p models.Profile) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	CreateAccount(ctx context.Context, a *models.Account) error
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateTrade(ctx context.Context, t *models.Trade) error
	ListTrades(ctx context.Context, accountID int64) ([]models.Trade, error)
}

// Persistent answers the journal commands from the database.
// Saved accounts and trades come back with their assigned ID.
type Persistent struct {
	store  Store
	logger *zap.Logger
}

var _ Journal = (*Persistent)(nil)

// NewPersistent creates a Persistent journal over store.
func NewPersistent(store Store, logger *zap.Logger) *Persistent {
	return &Persistent{store: store, logger: logger.Named("journal")}
}

func (p *Persistent) SaveProfile(ctx context.Context, profile models.Profile) (string, error) {
	if err := p.store.SaveProfile(ctx, profile); err != nil {
		return "", err
	}
	p.logger.Info("Saved profile", zap.String("name", profile.Name))
	return encode(profile)
}

func (p *Persistent) GetProfile(ctx context.Context) (*models.Profile, error) {
	return p.store.GetProfile(ctx)
}

func (p *Persistent) SaveAccount(ctx context.Context, account models.Account) (string, error) {
	if err := p.store.CreateAccount(ctx, &account); err != nil {
		return "", err
	}
	p.logger.Info("Saved account", zap.Int64p("id", account.ID), zap.String("name", account.Name))
	return encode(account)
}

func (p *Persistent) GetAccounts(ctx context.Context) ([]models.Account, error) {
	return p.store.ListAccounts(ctx)
}

func (p *Persistent) SaveTrade(ctx context.Context, trade models.Trade) (string, error) {
	if err := p.store.CreateTrade(ctx, &trade); err != nil {
		return "", err
	}
	p.logger.Info("Saved trade",
		zap.Int64p("id", trade.ID),
		zap.Int64("account_id", trade.AccountID),
		zap.String("symbol", trade.Symbol))
	return encode(trade)
}

func (p *Persistent) GetTrades(ctx context.Context, accountID int64) ([]models.Trade, error) {
	return p.store.ListTrades(ctx, accountID)
}
