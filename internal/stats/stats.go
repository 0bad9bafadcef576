package stats

import "trading-journal/internal/models"

// Summary holds performance figures for a set of trades.
type Summary struct {
	TotalTrades     int64   `json:"totalTrades"`
	WinningTrades   int64   `json:"winningTrades"`
	LosingTrades    int64   `json:"losingTrades"`
	WinRate         float64 `json:"winRate"`
	GrossProfit     float64 `json:"grossProfit"`
	GrossLoss       float64 `json:"grossLoss"`
	ProfitFactor    float64 `json:"profitFactor"`
	TotalCommission float64 `json:"totalCommission"`
	NetProfit       float64 `json:"netProfit"`
}

// Summarize calculates statistics over trades.
// Break-even trades count toward the total but are neither winners nor losers.
func Summarize(trades []models.Trade) Summary {
	s := Summary{}

	for _, trade := range trades {
		s.TotalTrades++
		switch {
		case trade.Profit > 0:
			s.WinningTrades++
			s.GrossProfit += trade.Profit
		case trade.Profit < 0:
			s.LosingTrades++
			s.GrossLoss += -trade.Profit
		}
		s.TotalCommission += trade.Commission
	}

	if s.TotalTrades > 0 {
		s.WinRate = float64(s.WinningTrades) / float64(s.TotalTrades)
	}
	// ProfitFactor stays 0 without losses.
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	}
	s.NetProfit = s.GrossProfit - s.GrossLoss - s.TotalCommission

	return s
}
