package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions since %s: %w", since, err)
	}
	return txs, nil
}

// EarliestDate returns the date of the user's oldest transaction. The bool
// is false when the user has none.
func (r *transactionRepository) EarliestDate(ctx context.Context, userID uint) (time.Time, bool, error) {
	var earliest sql.NullTime
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Select("MIN(date)").
		Scan(&earliest).Error
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get earliest transaction date: %w", err)
	}
	if !earliest.Valid {
		return time.Time{}, false, nil
	}
	return earliest.Time, true, nil
}
