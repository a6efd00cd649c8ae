package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet is a named money container. Balance and the lifetime totals are
// owned by the ledger engine; balance == totalIncome - totalExpenses holds
// after every successful ledger operation.
type Wallet struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	Name          string          `gorm:"not null" json:"name"`
	Icon          string          `json:"icon,omitempty"`
	Balance       decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"balance"`
	TotalIncome   decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"total_income"`
	TotalExpenses decimal.Decimal `gorm:"type:numeric(20,2);default:0" json:"total_expenses"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// New wallets always start empty regardless of caller-supplied values
	w.Balance = decimal.Zero
	w.TotalIncome = decimal.Zero
	w.TotalExpenses = decimal.Zero
	return nil
}
