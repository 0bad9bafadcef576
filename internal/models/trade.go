package models

// Trade represents a journaled trade belonging to one Account.
type Trade struct {
	ID         *int64   `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	AccountID  int64    `json:"accountId" gorm:"column:account_id;not null"`
	Symbol     string   `json:"symbol" gorm:"column:symbol;not null"`
	Type       string   `json:"type" gorm:"column:type;not null"` // e.g. "buy" or "sell"
	EntryPrice float64  `json:"entryPrice" gorm:"column:entry_price;not null"`
	ExitPrice  *float64 `json:"exitPrice" gorm:"column:exit_price"`
	TakeProfit float64  `json:"takeProfit" gorm:"column:take_profit;not null"`
	StopLoss   float64  `json:"stopLoss" gorm:"column:stop_loss;not null"`
	LotSize    float64  `json:"lotSize" gorm:"column:lot_size;not null"`
	Volume     float64  `json:"volume" gorm:"column:volume;not null"`
	Profit     float64  `json:"profit" gorm:"column:profit;not null"`
	Commission float64  `json:"commission" gorm:"column:commission"`
	RRRatio    *string  `json:"rrRatio" gorm:"column:rr_ratio"`
	Strategy   *string  `json:"strategy" gorm:"column:strategy"`
	Session    *string  `json:"session" gorm:"column:session"`
	Duration   *string  `json:"duration" gorm:"column:duration"`
	Date       string   `json:"date" gorm:"column:date;not null"`
}

func (Trade) TableName() string {
	return "trades"
}
