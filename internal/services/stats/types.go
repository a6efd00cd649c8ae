package stats

import (
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Bucket is one chart bar: total income and expense for a calendar slot.
type Bucket struct {
	Label   string          `json:"label"`
	Date    time.Time       `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// Result pairs the chart buckets with the transactions that fed them,
// newest first.
type Result struct {
	Stats        []Bucket             `json:"stats"`
	Transactions []models.Transaction `json:"transactions"`
}
