package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is a single income or expense event attributed to exactly one
// wallet. Category is only meaningful for expenses.
type Transaction struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	WalletID    uint            `gorm:"not null;index" json:"wallet_id"`
	Type        string          `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Attachment  string          `json:"attachment,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsIncome reports whether the transaction adds to a wallet's balance.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}
