package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory WalletRepository. Error paths in the service run
// before any write, so ExecuteInTransaction simply runs fn against the same
// store.
type fakeRepo struct {
	wallets       map[uint]models.Wallet
	txs           map[uint]models.Transaction
	nextTxID      uint
	walletUpdates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		wallets:  make(map[uint]models.Wallet),
		txs:      make(map[uint]models.Transaction),
		nextTxID: 1,
	}
}

func (f *fakeRepo) Create(w *models.Wallet) error {
	f.wallets[w.ID] = *w
	return nil
}

func (f *fakeRepo) GetByID(id uint) (*models.Wallet, error) {
	w, ok := f.wallets[id]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	copy := w
	return &copy, nil
}

func (f *fakeRepo) GetByUser(userID uint) ([]models.Wallet, error) {
	var out []models.Wallet
	for _, w := range f.wallets {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(w *models.Wallet) error {
	if _, ok := f.wallets[w.ID]; !ok {
		return repositories.ErrWalletNotFound
	}
	f.wallets[w.ID] = *w
	f.walletUpdates++
	return nil
}

func (f *fakeRepo) Delete(id uint) error {
	if _, ok := f.wallets[id]; !ok {
		return repositories.ErrWalletNotFound
	}
	delete(f.wallets, id)
	return nil
}

func (f *fakeRepo) CreateTransaction(tx *models.Transaction) error {
	if tx.ID == 0 {
		tx.ID = f.nextTxID
		f.nextTxID++
	}
	f.txs[tx.ID] = *tx
	return nil
}

func (f *fakeRepo) GetTransactionByID(id uint) (*models.Transaction, error) {
	tx, ok := f.txs[id]
	if !ok {
		return nil, repositories.ErrTransactionNotFound
	}
	copy := tx
	return &copy, nil
}

func (f *fakeRepo) SaveTransaction(tx *models.Transaction) error {
	f.txs[tx.ID] = *tx
	return nil
}

func (f *fakeRepo) DeleteTransaction(id uint) error {
	if _, ok := f.txs[id]; !ok {
		return repositories.ErrTransactionNotFound
	}
	delete(f.txs, id)
	return nil
}

func (f *fakeRepo) DeleteTransactionsByWallet(walletID uint, _ int) (int64, error) {
	var n int64
	for id, tx := range f.txs {
		if tx.WalletID == walletID {
			delete(f.txs, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(f)
}

type fakeQueries struct {
	repo *fakeRepo
}

func (q *fakeQueries) ListByUser(_ context.Context, userID uint, _, _ int) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range q.repo.txs {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (q *fakeQueries) ListByUserSince(_ context.Context, userID uint, since time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range q.repo.txs {
		if tx.UserID == userID && !tx.Date.Before(since) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (q *fakeQueries) EarliestDate(_ context.Context, userID uint) (time.Time, bool, error) {
	var earliest time.Time
	found := false
	for _, tx := range q.repo.txs {
		if tx.UserID != userID {
			continue
		}
		if !found || tx.Date.Before(earliest) {
			earliest = tx.Date
			found = true
		}
	}
	return earliest, found, nil
}

type fakeCategories struct {
	keys map[string]bool
}

func (c *fakeCategories) List() ([]models.Category, error) { return nil, nil }

func (c *fakeCategories) GetByKey(key string) (*models.Category, error) {
	if c.keys[key] {
		return &models.Category{Key: key}, nil
	}
	return nil, repositories.ErrCategoryNotFound
}

func (c *fakeCategories) Upsert(*models.Category) error { return nil }

type fakeResolver struct {
	uploads int
	fail    bool
}

func (r *fakeResolver) Resolve(_ context.Context, in *models.AttachmentInput, folder string) (string, error) {
	if in.URL != "" {
		return in.URL, nil
	}
	if r.fail {
		return "", errors.New("upload failed")
	}
	r.uploads++
	return "https://store.example.com/" + folder + "/uploaded", nil
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newTestService(t *testing.T) (*fakeRepo, *fakeResolver, Service) {
	t.Helper()
	repo := newFakeRepo()
	resolver := &fakeResolver{}
	cats := &fakeCategories{keys: map[string]bool{"groceries": true, "rent": true}}
	svc := NewService(repo, &fakeQueries{repo: repo}, cats, resolver, NoopInvalidator{})
	return repo, resolver, svc
}

func seedWallet(repo *fakeRepo, id, userID uint, balance, income, expenses int64) {
	repo.wallets[id] = models.Wallet{
		ID:            id,
		UserID:        userID,
		Name:          "wallet",
		Balance:       d(balance),
		TotalIncome:   d(income),
		TotalExpenses: d(expenses),
	}
}

func assertInvariant(t *testing.T, w models.Wallet) {
	t.Helper()
	assert.Truef(t, w.Balance.Equal(w.TotalIncome.Sub(w.TotalExpenses)),
		"balance %s != income %s - expenses %s", w.Balance, w.TotalIncome, w.TotalExpenses)
}

func TestCreateIncomeUpdatesTotals(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 0, 0, 0)

	tx, err := svc.Create(context.Background(), 7, TransactionDraft{
		Type:     models.TransactionTypeIncome,
		Amount:   d(200),
		WalletID: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, tx.ID)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(200)))
	assert.True(t, w.TotalIncome.Equal(d(200)))
	assert.True(t, w.TotalExpenses.Equal(d(0)))
	assertInvariant(t, w)
}

func TestCreateExpenseInsufficientBalance(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 50, 50, 0)

	_, err := svc.Create(context.Background(), 7, TransactionDraft{
		Type:     models.TransactionTypeExpense,
		Amount:   d(100),
		WalletID: 1,
		Category: "groceries",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(50)), "balance must be untouched after rejection")
	assert.Empty(t, repo.txs, "no transaction may be persisted")
}

func TestCreateValidation(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 100, 100, 0)

	tests := []struct {
		name    string
		draft   TransactionDraft
		wantErr error
	}{
		{
			name:    "zero amount",
			draft:   TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(0), WalletID: 1},
			wantErr: ErrInvalidDraft,
		},
		{
			name:    "negative amount",
			draft:   TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(-5), WalletID: 1},
			wantErr: ErrInvalidDraft,
		},
		{
			name:    "missing wallet",
			draft:   TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(5)},
			wantErr: ErrInvalidDraft,
		},
		{
			name:    "missing type",
			draft:   TransactionDraft{Amount: d(5), WalletID: 1},
			wantErr: ErrInvalidDraft,
		},
		{
			name:    "expense without category",
			draft:   TransactionDraft{Type: models.TransactionTypeExpense, Amount: d(5), WalletID: 1},
			wantErr: ErrInvalidDraft,
		},
		{
			name:    "expense with unknown category",
			draft:   TransactionDraft{Type: models.TransactionTypeExpense, Amount: d(5), WalletID: 1, Category: "yachts"},
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 7, tt.draft)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateUploadFailureLeavesWalletUntouched(t *testing.T) {
	repo, resolver, svc := newTestService(t)
	resolver.fail = true
	seedWallet(repo, 1, 7, 100, 100, 0)

	_, err := svc.Create(context.Background(), 7, TransactionDraft{
		Type:       models.TransactionTypeExpense,
		Amount:     d(20),
		WalletID:   1,
		Category:   "groceries",
		Attachment: &models.AttachmentInput{Data: []byte("receipt")},
	})
	require.Error(t, err)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(100)))
	assert.Empty(t, repo.txs)
	assert.Zero(t, repo.walletUpdates)
}

func TestUpdateNonFinancialFastPath(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 80, 100, 20)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeExpense, Amount: d(20),
		Category: "rent", Description: "old", Date: time.Now(),
	}

	tx, err := svc.Update(context.Background(), 7, 5, TransactionDraft{
		Type:        models.TransactionTypeExpense,
		Amount:      d(20),
		WalletID:    1,
		Category:    "groceries",
		Description: "new description",
	})
	require.NoError(t, err)

	assert.Equal(t, "new description", tx.Description)
	assert.Equal(t, "groceries", tx.Category)
	assert.Zero(t, repo.walletUpdates, "unchanged financial fields must not touch the wallet")

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(80)))
}

func TestUpdateMoveBetweenWallets(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 100, 150, 50) // wallet A
	seedWallet(repo, 2, 7, 100, 100, 0)  // wallet B
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeExpense, Amount: d(50),
		Category: "rent", Date: time.Now(),
	}

	tx, err := svc.Update(context.Background(), 7, 5, TransactionDraft{
		Type:     models.TransactionTypeExpense,
		Amount:   d(30),
		WalletID: 2,
		Category: "rent",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), tx.WalletID)

	a := repo.wallets[1]
	assert.True(t, a.Balance.Equal(d(150)), "A balance reverted, got %s", a.Balance)
	assert.True(t, a.TotalExpenses.Equal(d(0)))

	b := repo.wallets[2]
	assert.True(t, b.Balance.Equal(d(70)), "B absorbed the new expense, got %s", b.Balance)
	assert.True(t, b.TotalExpenses.Equal(d(30)))

	assertInvariant(t, a)
	assertInvariant(t, b)
}

func TestUpdateSameWalletAmountChange(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 100, 100, 0)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(100), Date: time.Now(),
	}

	_, err := svc.Update(context.Background(), 7, 5, TransactionDraft{
		Type:     models.TransactionTypeIncome,
		Amount:   d(40),
		WalletID: 1,
	})
	require.NoError(t, err)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(40)))
	assert.True(t, w.TotalIncome.Equal(d(40)))
	assertInvariant(t, w)
}

func TestUpdateInsufficientAgainstRevertedBalance(t *testing.T) {
	repo, _, svc := newTestService(t)
	// Balance 60 of which 50 came from the income being edited; turning it
	// into a 100 expense must be judged against the reverted balance of 10.
	seedWallet(repo, 1, 7, 60, 60, 0)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(50), Date: time.Now(),
	}

	_, err := svc.Update(context.Background(), 7, 5, TransactionDraft{
		Type:     models.TransactionTypeExpense,
		Amount:   d(100),
		WalletID: 1,
		Category: "groceries",
	})
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(60)), "wallet must be untouched, got %s", w.Balance)
	assert.Zero(t, repo.walletUpdates)
}

func TestUpdateAttachmentThreeState(t *testing.T) {
	repo, resolver, svc := newTestService(t)
	seedWallet(repo, 1, 7, 100, 100, 0)

	base := models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(10),
		Attachment: "https://store.example.com/transactions/old",
		Date:       time.Now(),
	}
	draft := TransactionDraft{
		Type:     models.TransactionTypeIncome,
		Amount:   d(10),
		WalletID: 1,
	}

	t.Run("nil leaves stored reference untouched", func(t *testing.T) {
		repo.txs[5] = base
		tx, err := svc.Update(context.Background(), 7, 5, draft)
		require.NoError(t, err)
		assert.Equal(t, base.Attachment, tx.Attachment)
	})

	t.Run("explicit empty clears it", func(t *testing.T) {
		repo.txs[5] = base
		cleared := draft
		cleared.Attachment = &models.AttachmentInput{}
		tx, err := svc.Update(context.Background(), 7, 5, cleared)
		require.NoError(t, err)
		assert.Empty(t, tx.Attachment)
	})

	t.Run("pending data resolves to a new reference", func(t *testing.T) {
		repo.txs[5] = base
		replaced := draft
		replaced.Attachment = &models.AttachmentInput{Data: []byte("new receipt")}
		tx, err := svc.Update(context.Background(), 7, 5, replaced)
		require.NoError(t, err)
		assert.Equal(t, 1, resolver.uploads)
		assert.NotEqual(t, base.Attachment, tx.Attachment)
	})
}

func TestDeleteRevertsContribution(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 120, 140, 20)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(100), Date: time.Now(),
	}

	require.NoError(t, svc.Delete(context.Background(), 7, 5))

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(20)))
	assert.True(t, w.TotalIncome.Equal(d(40)))
	assert.True(t, w.TotalExpenses.Equal(d(20)))
	assertInvariant(t, w)
	assert.NotContains(t, repo.txs, uint(5))
}

func TestDeleteNegativeBalanceGuard(t *testing.T) {
	repo, _, svc := newTestService(t)
	// Reverting the 100 income would leave the balance at -20; the wallet
	// is already inconsistent, so the delete must be rejected untouched.
	seedWallet(repo, 1, 7, 80, 100, 20)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(100), Date: time.Now(),
	}

	err := svc.Delete(context.Background(), 7, 5)
	assert.ErrorIs(t, err, ErrNegativeBalance)

	w := repo.wallets[1]
	assert.True(t, w.Balance.Equal(d(80)))
	assert.Contains(t, repo.txs, uint(5), "transaction must survive a rejected delete")
}

func TestDeleteNotFound(t *testing.T) {
	_, _, svc := newTestService(t)
	err := svc.Delete(context.Background(), 7, 99)
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)
}

func TestOwnershipScoping(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 100, 100, 0)
	repo.txs[5] = models.Transaction{
		ID: 5, UserID: 7, WalletID: 1,
		Type: models.TransactionTypeIncome, Amount: d(100), Date: time.Now(),
	}

	_, err := svc.Create(context.Background(), 8, TransactionDraft{
		Type: models.TransactionTypeIncome, Amount: d(10), WalletID: 1,
	})
	assert.ErrorIs(t, err, repositories.ErrWalletNotFound)

	err = svc.Delete(context.Background(), 8, 5)
	assert.ErrorIs(t, err, repositories.ErrTransactionNotFound)
}

func TestInvariantHoldsAcrossOperationSequence(t *testing.T) {
	repo, _, svc := newTestService(t)
	seedWallet(repo, 1, 7, 0, 0, 0)
	seedWallet(repo, 2, 7, 0, 0, 0)
	ctx := context.Background()

	checkAll := func() {
		for _, w := range repo.wallets {
			assertInvariant(t, w)
		}
	}

	tx1, err := svc.Create(ctx, 7, TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(500), WalletID: 1})
	require.NoError(t, err)
	checkAll()

	tx2, err := svc.Create(ctx, 7, TransactionDraft{Type: models.TransactionTypeExpense, Amount: d(120), WalletID: 1, Category: "groceries"})
	require.NoError(t, err)
	checkAll()

	_, err = svc.Create(ctx, 7, TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(80), WalletID: 2})
	require.NoError(t, err)
	checkAll()

	_, err = svc.Update(ctx, 7, tx2.ID, TransactionDraft{Type: models.TransactionTypeExpense, Amount: d(60), WalletID: 2, Category: "rent"})
	require.NoError(t, err)
	checkAll()

	_, err = svc.Update(ctx, 7, tx1.ID, TransactionDraft{Type: models.TransactionTypeIncome, Amount: d(450), WalletID: 1})
	require.NoError(t, err)
	checkAll()

	require.NoError(t, svc.Delete(ctx, 7, tx2.ID))
	checkAll()

	w1, w2 := repo.wallets[1], repo.wallets[2]
	assert.True(t, w1.Balance.Equal(d(450)))
	assert.True(t, w2.Balance.Equal(d(80)))
}
