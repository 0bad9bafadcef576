package models

// Account is a trading account (broker, balance, leverage) that trades are logged against.
// ID is nil until the account has been stored.
type Account struct {
	ID             *int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name           string  `json:"name" gorm:"column:name;not null"`
	Type           string  `json:"type" gorm:"column:type;not null"`
	InitialBalance float64 `json:"initialBalance" gorm:"column:initial_balance;not null"`
	CurrentBalance float64 `json:"currentBalance" gorm:"column:current_balance;not null"`
	Broker         string  `json:"broker" gorm:"column:broker;not null"`
	Leverage       string  `json:"leverage" gorm:"column:leverage;not null"`
	Instruments    *string `json:"instruments" gorm:"column:instruments"`
}

func (Account) TableName() string {
	return "accounts"
}
