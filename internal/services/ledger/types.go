package ledger

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// TransactionDraft is the caller-supplied shape for Create and Update. The
// financial fields (Type, Amount, WalletID) are always required; Attachment
// is three-state (nil = leave untouched, empty = clear, set = resolve).
type TransactionDraft struct {
	Type        string                  `json:"type"`
	Amount      decimal.Decimal         `json:"amount"`
	WalletID    uint                    `json:"wallet_id"`
	Category    string                  `json:"category,omitempty"`
	Description string                  `json:"description,omitempty"`
	Date        time.Time               `json:"date"`
	Attachment  *models.AttachmentInput `json:"attachment,omitempty"`
}

// CacheInvalidator drops cached wallet state after a ledger mutation.
type CacheInvalidator interface {
	InvalidateWallet(ctx context.Context, walletID, userID uint) error
}

// NoopInvalidator is used when no cache is wired, e.g. in tests.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidateWallet(context.Context, uint, uint) error { return nil }
