package repositories

import (
	"errors"

	"fintrack/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrUserNotFound        = errors.New("user not found")
)

// WalletRepository defines the database operations the ledger engine and
// wallet store compose. Transaction writes live here too so a single
// ExecuteInTransaction closure can mutate a wallet and its transaction
// records atomically.
type WalletRepository interface {
	// Wallet operations
	Create(wallet *models.Wallet) error
	GetByID(id uint) (*models.Wallet, error)
	GetByUser(userID uint) ([]models.Wallet, error)
	Update(wallet *models.Wallet) error
	Delete(id uint) error

	// Transaction record operations
	CreateTransaction(tx *models.Transaction) error
	GetTransactionByID(id uint) (*models.Transaction, error)
	SaveTransaction(tx *models.Transaction) error
	DeleteTransaction(id uint) error
	DeleteTransactionsByWallet(walletID uint, batchSize int) (int64, error)

	// ExecuteInTransaction runs fn against a repository bound to one
	// database transaction; fn's writes commit or roll back together.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
