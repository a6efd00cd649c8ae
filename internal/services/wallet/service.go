package wallet

import (
	"context"
	"errors"
	"log"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services/attachment"
)

// deleteBatchSize bounds how many transaction rows a cascade delete removes
// per statement.
const deleteBatchSize = 500

type Service interface {
	List(ctx context.Context, userID uint) ([]models.Wallet, error)
	Get(ctx context.Context, userID, walletID uint) (*models.Wallet, error)
	Upsert(ctx context.Context, userID, walletID uint, draft WalletDraft) (*models.Wallet, error)
	Delete(ctx context.Context, userID, walletID uint) error
}

type service struct {
	repo     repositories.WalletRepository
	resolver attachment.Resolver
	cache    Cache
}

func NewService(repo repositories.WalletRepository, resolver attachment.Resolver, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if resolver == nil {
		panic("resolver is required")
	}
	if cache == nil {
		cache = NoopCache{}
	}
	return &service{repo: repo, resolver: resolver, cache: cache}
}

// List returns the user's wallets, reading through the cache. A cache
// failure degrades to a database read.
func (s *service) List(ctx context.Context, userID uint) ([]models.Wallet, error) {
	if cached, err := s.cache.GetUserWallets(ctx, userID); err == nil {
		return cached, nil
	}

	wallets, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetUserWallets(ctx, userID, wallets); err != nil {
		log.Printf("failed to cache wallet list for user %d: %v", userID, err)
	}
	return wallets, nil
}

func (s *service) Get(ctx context.Context, userID, walletID uint) (*models.Wallet, error) {
	if cached, err := s.cache.GetWallet(ctx, walletID); err == nil {
		if cached.UserID != userID {
			return nil, repositories.ErrWalletNotFound
		}
		return cached, nil
	}

	wallet, err := s.repo.GetByID(walletID)
	if err != nil {
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, repositories.ErrWalletNotFound
	}
	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet %d: %v", walletID, err)
	}
	return wallet, nil
}

// Upsert creates a wallet when walletID is zero and otherwise merges the
// supplied fields into the existing record. Money totals are never taken
// from the draft: a new wallet always starts at zero and an update leaves
// them to the ledger.
func (s *service) Upsert(ctx context.Context, userID, walletID uint, draft WalletDraft) (*models.Wallet, error) {
	if walletID == 0 {
		return s.create(ctx, userID, draft)
	}
	return s.update(ctx, userID, walletID, draft)
}

func (s *service) create(ctx context.Context, userID uint, draft WalletDraft) (*models.Wallet, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, ErrInvalidWallet
	}

	wallet := &models.Wallet{
		UserID: userID,
		Name:   name,
	}
	if draft.Icon != nil && !draft.Icon.IsEmpty() {
		url, err := s.resolver.Resolve(ctx, draft.Icon, attachment.FolderWallets)
		if err != nil {
			return nil, err
		}
		wallet.Icon = url
	}

	if err := s.repo.Create(wallet); err != nil {
		return nil, err
	}
	s.invalidate(ctx, wallet.ID, userID)
	return wallet, nil
}

func (s *service) update(ctx context.Context, userID, walletID uint, draft WalletDraft) (*models.Wallet, error) {
	wallet, err := s.repo.GetByID(walletID)
	if err != nil {
		return nil, err
	}
	if wallet.UserID != userID {
		return nil, repositories.ErrWalletNotFound
	}

	if name := strings.TrimSpace(draft.Name); name != "" {
		wallet.Name = name
	}
	if draft.Icon != nil {
		if draft.Icon.IsEmpty() {
			wallet.Icon = ""
		} else {
			url, err := s.resolver.Resolve(ctx, draft.Icon, attachment.FolderWallets)
			if err != nil {
				return nil, err
			}
			wallet.Icon = url
		}
	}

	if err := s.repo.Update(wallet); err != nil {
		return nil, err
	}
	s.invalidate(ctx, walletID, userID)
	return wallet, nil
}

// Delete removes a wallet and all of its transactions in one database
// transaction.
func (s *service) Delete(ctx context.Context, userID, walletID uint) error {
	err := s.repo.ExecuteInTransaction(func(repo repositories.WalletRepository) error {
		wallet, err := repo.GetByID(walletID)
		if err != nil {
			return err
		}
		if wallet.UserID != userID {
			return repositories.ErrWalletNotFound
		}

		removed, err := repo.DeleteTransactionsByWallet(walletID, deleteBatchSize)
		if err != nil {
			return err
		}
		if removed > 0 {
			log.Printf("wallet %d cascade removed %d transactions", walletID, removed)
		}
		return repo.Delete(walletID)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, walletID, userID)
	return nil
}

func (s *service) invalidate(ctx context.Context, walletID, userID uint) {
	if err := s.cache.InvalidateWallet(ctx, walletID, userID); err != nil && !errors.Is(err, errNoCache) {
		log.Printf("failed to invalidate wallet cache %d: %v", walletID, err)
	}
}
