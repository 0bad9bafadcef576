package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"trading-journal/internal/models"
	"trading-journal/internal/stats"
)

// Command names exposed to the UI.
const (
	SaveProfile   = "save_profile"
	GetProfile    = "get_profile"
	SaveAccount   = "save_account"
	GetAccounts   = "get_accounts"
	SaveTrade     = "save_trade"
	GetTrades     = "get_trades"
	GetStatistics = "get_statistics"
)

// Journal is the behaviour behind the journal commands.
// Save operations return the saved entity serialized as a JSON string.
type Journal interface {
	SaveProfile(ctx context.Context, p models.Profile) (string, error)
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveAccount(ctx context.Context, a models.Account) (string, error)
	GetAccounts(ctx context.Context) ([]models.Account, error)
	SaveTrade(ctx context.Context, t models.Trade) (string, error)
	GetTrades(ctx context.Context, accountID int64) ([]models.Trade, error)
}

// Register binds the journal commands to r.
func Register(r *Router, j Journal) {
	r.Register(SaveProfile, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Profile *models.Profile `json:"profile"`
		}
		if err := decodeArgs(SaveProfile, raw, &args); err != nil {
			return nil, err
		}
		if args.Profile == nil {
			return nil, missingKey(SaveProfile, "profile")
		}
		return j.SaveProfile(ctx, *args.Profile)
	})

	r.Register(GetProfile, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return j.GetProfile(ctx)
	})

	r.Register(SaveAccount, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Account *models.Account `json:"account"`
		}
		if err := decodeArgs(SaveAccount, raw, &args); err != nil {
			return nil, err
		}
		if args.Account == nil {
			return nil, missingKey(SaveAccount, "account")
		}
		return j.SaveAccount(ctx, *args.Account)
	})

	r.Register(GetAccounts, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return j.GetAccounts(ctx)
	})

	r.Register(SaveTrade, func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args struct {
			Trade *models.Trade `json:"trade"`
		}
		if err := decodeArgs(SaveTrade, raw, &args); err != nil {
			return nil, err
		}
		if args.Trade == nil {
			return nil, missingKey(SaveTrade, "trade")
		}
		return j.SaveTrade(ctx, *args.Trade)
	})

	r.Register(GetTrades, func(ctx context.Context, raw json.RawMessage) (any, error) {
		accountID, err := decodeAccountID(GetTrades, raw)
		if err != nil {
			return nil, err
		}
		return j.GetTrades(ctx, accountID)
	})

	r.Register(GetStatistics, func(ctx context.Context, raw json.RawMessage) (any, error) {
		accountID, err := decodeAccountID(GetStatistics, raw)
		if err != nil {
			return nil, err
		}
		trades, err := j.GetTrades(ctx, accountID)
		if err != nil {
			return nil, err
		}
		return stats.Summarize(trades), nil
	})
}

func decodeAccountID(command string, raw json.RawMessage) (int64, error) {
	var args struct {
		AccountID *int64 `json:"accountId"`
	}
	if err := decodeArgs(command, raw, &args); err != nil {
		return 0, err
	}
	if args.AccountID == nil {
		return 0, missingKey(command, "accountId")
	}
	return *args.AccountID, nil
}

// decodeArgs unmarshals the argument object. An empty body counts as {}.
func decodeArgs(command string, raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid args for command %s: %w", command, err)
	}
	return nil
}

func missingKey(command, key string) error {
	return fmt.Errorf("invalid args for command %s: missing required key %s", command, key)
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
