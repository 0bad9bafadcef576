package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"trading-journal/internal/models"
)

// TradeColumns is the header row written by WriteTradesCSV.
var TradeColumns = []string{
	"id", "account_id", "symbol", "type", "entry_price", "exit_price",
	"take_profit", "stop_loss", "lot_size", "volume", "profit", "commission",
	"rr_ratio", "strategy", "session", "duration", "date",
}

// WriteTradesCSV writes trades as CSV with a header row. Absent optional values are empty cells.
func WriteTradesCSV(w io.Writer, trades []models.Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(TradeColumns); err != nil {
		return err
	}

	for _, t := range trades {
		record := []string{
			optInt(t.ID),
			strconv.FormatInt(t.AccountID, 10),
			t.Symbol,
			t.Type,
			f(t.EntryPrice),
			optFloat(t.ExitPrice),
			f(t.TakeProfit),
			f(t.StopLoss),
			f(t.LotSize),
			f(t.Volume),
			f(t.Profit),
			f(t.Commission),
			optString(t.RRRatio),
			optString(t.Strategy),
			optString(t.Session),
			optString(t.Duration),
			t.Date,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func optFloat(x *float64) string {
	if x == nil {
		return ""
	}
	return f(*x)
}

func optInt(x *int64) string {
	if x == nil {
		return ""
	}
	return strconv.FormatInt(*x, 10)
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
