package stats

import (
	"context"
	"sort"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
)

// Service aggregates a user's transactions into fixed calendar buckets for
// the weekly, monthly and yearly charts. Buckets are returned oldest first
// and cover the whole window even when empty.
type Service interface {
	Weekly(ctx context.Context, userID uint) (*Result, error)
	Monthly(ctx context.Context, userID uint) (*Result, error)
	Yearly(ctx context.Context, userID uint) (*Result, error)
}

type service struct {
	queries repositories.TransactionRepository
	now     func() time.Time
}

func NewService(queries repositories.TransactionRepository) Service {
	if queries == nil {
		panic("queries is required")
	}
	return &service{queries: queries, now: time.Now}
}

// Weekly covers the last seven calendar days including today, one bucket
// per day.
func (s *service) Weekly(ctx context.Context, userID uint) (*Result, error) {
	today := startOfDay(s.now())
	start := today.AddDate(0, 0, -6)

	buckets := make([]Bucket, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		buckets[i] = Bucket{Label: day.Format("Mon"), Date: day}
		index[day.Format("2006-01-02")] = i
	}

	return s.aggregate(ctx, userID, start, buckets, func(date time.Time) (int, bool) {
		i, ok := index[date.Format("2006-01-02")]
		return i, ok
	})
}

// Monthly covers the last twelve calendar months including the current one.
func (s *service) Monthly(ctx context.Context, userID uint) (*Result, error) {
	now := s.now()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := current.AddDate(0, -11, 0)

	buckets := make([]Bucket, 12)
	index := make(map[string]int, 12)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0)
		buckets[i] = Bucket{Label: month.Format("Jan 06"), Date: month}
		index[month.Format("2006-01")] = i
	}

	return s.aggregate(ctx, userID, start, buckets, func(date time.Time) (int, bool) {
		i, ok := index[date.Format("2006-01")]
		return i, ok
	})
}

// Yearly covers every year from the user's earliest transaction through the
// current year. With no history at all it still returns the current year.
func (s *service) Yearly(ctx context.Context, userID uint) (*Result, error) {
	currentYear := s.now().Year()
	startYear := currentYear

	earliest, found, err := s.queries.EarliestDate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if found && earliest.Year() < currentYear {
		startYear = earliest.Year()
	}

	loc := s.now().Location()
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, loc)

	count := currentYear - startYear + 1
	buckets := make([]Bucket, count)
	for i := 0; i < count; i++ {
		year := time.Date(startYear+i, time.January, 1, 0, 0, 0, 0, loc)
		buckets[i] = Bucket{Label: year.Format("2006"), Date: year}
	}

	return s.aggregate(ctx, userID, start, buckets, func(date time.Time) (int, bool) {
		i := date.Year() - startYear
		return i, i >= 0 && i < count
	})
}

// aggregate fetches the window's transactions and folds each into its
// bucket; transactions the slot function rejects are skipped, never dropped
// into a neighbouring bucket.
func (s *service) aggregate(
	ctx context.Context,
	userID uint,
	since time.Time,
	buckets []Bucket,
	slot func(time.Time) (int, bool),
) (*Result, error) {
	txs, err := s.queries.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		i, ok := slot(tx.Date)
		if !ok {
			continue
		}
		if tx.IsIncome() {
			buckets[i].Income = buckets[i].Income.Add(tx.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(tx.Amount)
		}
	}

	sort.Slice(txs, func(a, b int) bool { return txs[a].Date.After(txs[b].Date) })
	if txs == nil {
		txs = []models.Transaction{}
	}

	return &Result{Stats: buckets, Transactions: txs}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
