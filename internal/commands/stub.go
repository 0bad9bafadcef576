package commands

import (
	"context"

	"trading-journal/internal/models"
)

// Stub answers the journal commands without touching the database:
// saves echo their payload back as JSON and reads return nothing.
// The frontend persists through its own SQL access in this mode.
type Stub struct{}

var _ Journal = Stub{}

func (Stub) SaveProfile(_ context.Context, p models.Profile) (string, error) {
	return encode(p)
}

func (Stub) GetProfile(context.Context) (*models.Profile, error) {
	return nil, nil
}

func (Stub) SaveAccount(_ context.Context, a models.Account) (string, error) {
	return encode(a)
}

func (Stub) GetAccounts(context.Context) ([]models.Account, error) {
	return []models.Account{}, nil
}

func (Stub) SaveTrade(_ context.Context, t models.Trade) (string, error) {
	return encode(t)
}

func (Stub) GetTrades(context.Context, int64) ([]models.Trade, error) {
	return []models.Trade{}, nil
}
