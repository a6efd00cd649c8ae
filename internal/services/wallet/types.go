package wallet

import (
	"context"

	"fintrack/internal/models"
)

// WalletDraft is the client-supplied shape for creating or updating a
// wallet. On update, zero-value fields are left untouched; Icon follows the
// attachment three-state convention (nil = keep, empty = clear, otherwise
// resolve).
type WalletDraft struct {
	Name string                  `json:"name"`
	Icon *models.AttachmentInput `json:"icon,omitempty"`
}

// Cache is the slice of the redis cache the wallet store reads through.
type Cache interface {
	GetWallet(ctx context.Context, id uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	GetUserWallets(ctx context.Context, userID uint) ([]models.Wallet, error)
	SetUserWallets(ctx context.Context, userID uint, wallets []models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID, userID uint) error
}

// NoopCache satisfies Cache without storing anything.
type NoopCache struct{}

func (NoopCache) GetWallet(context.Context, uint) (*models.Wallet, error) {
	return nil, errNoCache
}
func (NoopCache) SetWallet(context.Context, *models.Wallet) error { return nil }
func (NoopCache) GetUserWallets(context.Context, uint) ([]models.Wallet, error) {
	return nil, errNoCache
}
func (NoopCache) SetUserWallets(context.Context, uint, []models.Wallet) error { return nil }
func (NoopCache) InvalidateWallet(context.Context, uint, uint) error          { return nil }
