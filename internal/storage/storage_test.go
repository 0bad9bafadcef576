package storage

import (
	"context"
	"path/filepath"
	"testing"

	"trading-journal/internal/config"
	"trading-journal/internal/database"
	"trading-journal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trading_journal.db")
	db, err := database.NewDatabase(&config.Database{Path: path, MaxOpenConns: 1}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	return NewStore(db)
}

func strPtr(s string) *string { return &s }

func demoAccount() models.Account {
	return models.Account{
		Name:           "Demo",
		Type:           "forex",
		InitialBalance: 1000,
		CurrentBalance: 1000,
		Broker:         "X",
		Leverage:       "1:100",
	}
}

func TestStore_Profile(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	t.Run("EmptyReturnsNil", func(t *testing.T) {
		p, err := s.GetProfile(ctx)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("SaveThenReplace", func(t *testing.T) {
		require.NoError(t, s.SaveProfile(ctx, models.Profile{Name: "Ana", Experience: "beginner", Currency: "USD", Timezone: "UTC"}))
		require.NoError(t, s.SaveProfile(ctx, models.Profile{Name: "Ana", Email: strPtr("ana@example.com"), Experience: "advanced", Currency: "EUR", Timezone: "Europe/Lisbon"}))

		p, err := s.GetProfile(ctx)
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "advanced", p.Experience)
		assert.Equal(t, "EUR", p.Currency)
		require.NotNil(t, p.Email)
		assert.Equal(t, "ana@example.com", *p.Email)

		var count int64
		require.NoError(t, s.db.Table("profile").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestStore_Accounts(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	accounts, err := s.ListAccounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	first := demoAccount()
	require.NoError(t, s.CreateAccount(ctx, &first))
	require.NotNil(t, first.ID)
	assert.Equal(t, int64(1), *first.ID)

	second := demoAccount()
	second.Name = "Live"
	second.Instruments = strPtr("EURUSD,XAUUSD")
	require.NoError(t, s.CreateAccount(ctx, &second))
	require.NotNil(t, second.ID)
	assert.Equal(t, int64(2), *second.ID)

	accounts, err = s.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Demo", accounts[0].Name)
	assert.Nil(t, accounts[0].Instruments)
	assert.Equal(t, "Live", accounts[1].Name)
	assert.Equal(t, "EURUSD,XAUUSD", *accounts[1].Instruments)
}

func TestStore_Trades(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	acc := demoAccount()
	require.NoError(t, s.CreateAccount(ctx, &acc))

	exit := 1.0901
	later := models.Trade{AccountID: *acc.ID, Symbol: "EURUSD", Type: "buy", EntryPrice: 1.08, ExitPrice: &exit, TakeProfit: 1.1, StopLoss: 1.07, LotSize: 0.1, Volume: 10000, Profit: 101, Commission: 3.5, Date: "2024-03-02"}
	earlier := models.Trade{AccountID: *acc.ID, Symbol: "XAUUSD", Type: "sell", EntryPrice: 2050, TakeProfit: 2000, StopLoss: 2070, LotSize: 0.01, Volume: 1, Profit: -20, Strategy: strPtr("breakout"), Date: "2024-03-01"}

	require.NoError(t, s.CreateTrade(ctx, &later))
	require.NoError(t, s.CreateTrade(ctx, &earlier))
	assert.NotNil(t, later.ID)
	assert.NotNil(t, earlier.ID)

	trades, err := s.ListTrades(ctx, *acc.ID)
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, "XAUUSD", trades[0].Symbol)
	assert.Equal(t, "breakout", *trades[0].Strategy)
	assert.Nil(t, trades[0].ExitPrice)
	assert.Equal(t, "EURUSD", trades[1].Symbol)
	assert.InDelta(t, 1.0901, *trades[1].ExitPrice, 1e-9)
	assert.InDelta(t, 3.5, trades[1].Commission, 1e-9)

	none, err := s.ListTrades(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_CreateTrade_UnknownAccount(t *testing.T) {
	s := setupStore(t)

	tr := models.Trade{AccountID: 99, Symbol: "EURUSD", Type: "buy", Date: "2024-03-01"}
	err := s.CreateTrade(context.Background(), &tr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 99")
	assert.Contains(t, err.Error(), "FOREIGN KEY")
}
