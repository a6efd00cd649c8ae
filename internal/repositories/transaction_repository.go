package repositories

import (
	"context"
	"time"

	"fintrack/internal/models"
)

// TransactionRepository is the read side used by listings and the
// statistics aggregator. All queries are scoped by user id.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
	ListByUserSince(ctx context.Context, userID uint, since time.Time) ([]models.Transaction, error)
	EarliestDate(ctx context.Context, userID uint) (time.Time, bool, error)
}
