// Package ledger is the consistency engine for wallet totals. It creates,
// edits, and deletes transactions while keeping every wallet's balance and
// lifetime income/expense totals in step, using a revert-and-reapply
// protocol for edits that touch the financial fields.
package ledger

import (
	"context"
	"fmt"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/attachment"

	"github.com/shopspring/decimal"
)

// Service is the ledger engine contract.
type Service interface {
	Create(ctx context.Context, userID uint, draft TransactionDraft) (*models.Transaction, error)
	Update(ctx context.Context, userID uint, transactionID uint, draft TransactionDraft) (*models.Transaction, error)
	Delete(ctx context.Context, userID uint, transactionID uint) error
	List(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error)
}

type service struct {
	repo       repositories.WalletRepository
	queries    repositories.TransactionRepository
	categories repositories.CategoryRepository
	resolver   attachment.Resolver
	cache      CacheInvalidator
}

// NewService creates a new ledger service.
func NewService(
	repo repositories.WalletRepository,
	queries repositories.TransactionRepository,
	categories repositories.CategoryRepository,
	resolver attachment.Resolver,
	cache CacheInvalidator,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if queries == nil {
		panic("queries is required")
	}
	if categories == nil {
		panic("categories is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	if cache == nil {
		cache = NoopInvalidator{}
	}

	return &service{
		repo:       repo,
		queries:    queries,
		categories: categories,
		resolver:   resolver,
		cache:      cache,
	}
}

func (s *service) validateDraft(draft TransactionDraft) error {
	if !draft.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidDraft)
	}
	if draft.WalletID == 0 {
		return fmt.Errorf("%w: wallet is required", ErrInvalidDraft)
	}
	switch draft.Type {
	case models.TransactionTypeIncome:
	case models.TransactionTypeExpense:
		if draft.Category == "" {
			return fmt.Errorf("%w: expense category is required", ErrInvalidDraft)
		}
		if _, err := s.categories.GetByKey(draft.Category); err != nil {
			if err == repositories.ErrCategoryNotFound {
				return fmt.Errorf("%w: %s", ErrUnknownCategory, draft.Category)
			}
			return err
		}
	default:
		return fmt.Errorf("%w: type must be income or expense", ErrInvalidDraft)
	}
	return nil
}

// resolveAttachment turns a draft's three-state attachment field into the
// string to persist. Upload happens here, before any wallet mutation, so an
// upload failure aborts the operation with nothing applied.
func (s *service) resolveAttachment(ctx context.Context, in *models.AttachmentInput, current string) (string, error) {
	if in == nil {
		return current, nil
	}
	if in.IsEmpty() {
		return "", nil
	}
	return s.resolver.Resolve(ctx, in, attachment.FolderTransactions)
}

// apply adds a transaction's contribution to a wallet's balance and totals.
func apply(w *models.Wallet, txType string, amount decimal.Decimal) {
	if txType == models.TransactionTypeIncome {
		w.Balance = w.Balance.Add(amount)
		w.TotalIncome = w.TotalIncome.Add(amount)
	} else {
		w.Balance = w.Balance.Sub(amount)
		w.TotalExpenses = w.TotalExpenses.Add(amount)
	}
}

// revert subtracts a transaction's contribution from a wallet's balance and
// totals; the exact inverse of apply.
func revert(w *models.Wallet, txType string, amount decimal.Decimal) {
	if txType == models.TransactionTypeIncome {
		w.Balance = w.Balance.Sub(amount)
		w.TotalIncome = w.TotalIncome.Sub(amount)
	} else {
		w.Balance = w.Balance.Add(amount)
		w.TotalExpenses = w.TotalExpenses.Sub(amount)
	}
}

func (s *service) Create(ctx context.Context, userID uint, draft TransactionDraft) (*models.Transaction, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	storedRef := ""
	if draft.Attachment != nil {
		ref, err := s.resolveAttachment(ctx, draft.Attachment, "")
		if err != nil {
			return nil, err
		}
		storedRef = ref
	}

	date := draft.Date
	if date.IsZero() {
		date = time.Now()
	}

	tx := &models.Transaction{
		UserID:      userID,
		WalletID:    draft.WalletID,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Attachment:  storedRef,
		Date:        date,
	}
	if tx.Type == models.TransactionTypeIncome {
		tx.Category = ""
	}

	err := s.repo.ExecuteInTransaction(func(r repositories.WalletRepository) error {
		wallet, err := r.GetByID(draft.WalletID)
		if err != nil {
			return err
		}
		if wallet.UserID != userID {
			return repositories.ErrWalletNotFound
		}

		if draft.Type == models.TransactionTypeExpense && wallet.Balance.LessThan(draft.Amount) {
			return ErrInsufficientBalance
		}

		apply(wallet, draft.Type, draft.Amount)
		if err := r.Update(wallet); err != nil {
			return err
		}
		return r.CreateTransaction(tx)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateWallet(ctx, draft.WalletID, userID)
	return tx, nil
}

func (s *service) Update(ctx context.Context, userID uint, transactionID uint, draft TransactionDraft) (*models.Transaction, error) {
	if err := s.validateDraft(draft); err != nil {
		return nil, err
	}

	old, err := s.repo.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}
	if old.UserID != userID {
		return nil, repositories.ErrTransactionNotFound
	}

	storedRef, err := s.resolveAttachment(ctx, draft.Attachment, old.Attachment)
	if err != nil {
		return nil, err
	}

	oldWalletID := old.WalletID
	financialChanged := old.Type != draft.Type ||
		old.WalletID != draft.WalletID ||
		!old.Amount.Equal(draft.Amount)

	mergeDraft := func(tx *models.Transaction) {
		tx.Type = draft.Type
		tx.WalletID = draft.WalletID
		tx.Amount = draft.Amount
		tx.Category = draft.Category
		if tx.Type == models.TransactionTypeIncome {
			tx.Category = ""
		}
		tx.Description = draft.Description
		tx.Attachment = storedRef
		if !draft.Date.IsZero() {
			tx.Date = draft.Date
		}
	}

	if !financialChanged {
		// Only non-financial fields change; skip the revert/reapply dance.
		mergeDraft(old)
		if err := s.repo.SaveTransaction(old); err != nil {
			return nil, err
		}
		return old, nil
	}

	err = s.repo.ExecuteInTransaction(func(r repositories.WalletRepository) error {
		oldWallet, err := r.GetByID(oldWalletID)
		if err != nil {
			return err
		}

		sameWallet := oldWalletID == draft.WalletID

		var newWallet *models.Wallet
		if !sameWallet {
			newWallet, err = r.GetByID(draft.WalletID)
			if err != nil {
				return err
			}
			if newWallet.UserID != userID {
				return repositories.ErrWalletNotFound
			}
		}

		revert(oldWallet, old.Type, old.Amount)

		// Sufficiency check before any persistence. For the same-wallet
		// case the reverted balance is what absorbs the new expense.
		if draft.Type == models.TransactionTypeExpense {
			absorbing := oldWallet
			if !sameWallet {
				absorbing = newWallet
			}
			if absorbing.Balance.LessThan(draft.Amount) {
				return ErrInsufficientBalance
			}
		}

		if err := r.Update(oldWallet); err != nil {
			return err
		}

		// Same wallet: thread the just-written value forward instead of
		// re-reading the row we wrote. Different wallet: re-read so the
		// applied totals are never stale.
		dest := oldWallet
		if !sameWallet {
			dest, err = r.GetByID(draft.WalletID)
			if err != nil {
				return err
			}
		}

		apply(dest, draft.Type, draft.Amount)
		if err := r.Update(dest); err != nil {
			return err
		}

		mergeDraft(old)
		return r.SaveTransaction(old)
	})
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateWallet(ctx, oldWalletID, userID)
	if draft.WalletID != oldWalletID {
		s.cache.InvalidateWallet(ctx, draft.WalletID, userID)
	}
	return old, nil
}

func (s *service) Delete(ctx context.Context, userID uint, transactionID uint) error {
	tx, err := s.repo.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}
	if tx.UserID != userID {
		return repositories.ErrTransactionNotFound
	}

	err = s.repo.ExecuteInTransaction(func(r repositories.WalletRepository) error {
		wallet, err := r.GetByID(tx.WalletID)
		if err != nil {
			return err
		}

		revert(wallet, tx.Type, tx.Amount)

		// Guard against reverting into a negative balance. That means the
		// wallet was already inconsistent; surface it instead of clamping.
		if wallet.Balance.IsNegative() {
			return ErrNegativeBalance
		}

		// Wallet first, then the record: a crash in between leaves an
		// over-reported balance rather than a phantom transaction.
		if err := r.Update(wallet); err != nil {
			return err
		}
		return r.DeleteTransaction(transactionID)
	})
	if err != nil {
		return err
	}

	s.cache.InvalidateWallet(ctx, tx.WalletID, userID)
	return nil
}

func (s *service) List(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queries.ListByUser(ctx, userID, limit, offset)
}
