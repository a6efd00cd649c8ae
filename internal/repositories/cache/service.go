package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CacheService is the read-cache for wallet records. Only presentation
// reads go through it; ledger mutations always read the database fresh and
// invalidate here afterwards.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, ttl: defaultTTL}
}

func walletKey(id uint) string {
	return fmt.Sprintf("wallet:%d", id)
}

func userWalletsKey(userID uint) string {
	return fmt.Sprintf("wallets:user:%d", userID)
}

func (s *CacheService) GetWallet(ctx context.Context, id uint) (*models.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached wallet: %w", err)
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet: %w", err)
	}
	return &wallet, nil
}

func (s *CacheService) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

// InvalidateWallet drops both the wallet entry and the owner's list entry.
func (s *CacheService) InvalidateWallet(ctx context.Context, walletID, userID uint) error {
	return s.client.Del(ctx, walletKey(walletID), userWalletsKey(userID)).Err()
}

func (s *CacheService) GetUserWallets(ctx context.Context, userID uint) ([]models.Wallet, error) {
	data, err := s.client.Get(ctx, userWalletsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached wallet list: %w", err)
	}
	var wallets []models.Wallet
	if err := json.Unmarshal(data, &wallets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet list: %w", err)
	}
	return wallets, nil
}

func (s *CacheService) SetUserWallets(ctx context.Context, userID uint, wallets []models.Wallet) error {
	data, err := json.Marshal(wallets)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet list: %w", err)
	}
	return s.client.Set(ctx, userWalletsKey(userID), data, s.ttl).Err()
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
