package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hotelops/internal/models"
)

// CacheService holds unlocked, eventually-consistent snapshots for display
// paths (item lookups, low-stock lists). Snapshots are never used to gate a
// mutation; the stock ledger re-reads under a row lock.
type CacheService interface {
	GetItem(ctx context.Context, hotelID, itemID uuid.UUID) (*models.InventoryItem, error)
	SetItem(ctx context.Context, hotelID uuid.UUID, item *models.InventoryItem, ttl time.Duration) error
	DeleteItem(ctx context.Context, hotelID, itemID uuid.UUID) error
}

type redisCacheService struct {
	client *redis.Client
}

// NewRedisCacheWithClient wraps an existing client, letting callers share one
// connection pool with health checks.
func NewRedisCacheWithClient(client *redis.Client) CacheService {
	return &redisCacheService{client: client}
}

func itemKey(hotelID, itemID uuid.UUID) string {
	return fmt.Sprintf("hotelops:item:%s:%s", hotelID.String(), itemID.String())
}

func (r *redisCacheService) GetItem(ctx context.Context, hotelID, itemID uuid.UUID) (*models.InventoryItem, error) {
	data, err := r.client.Get(ctx, itemKey(hotelID, itemID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}

	item := &models.InventoryItem{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *redisCacheService) SetItem(ctx context.Context, hotelID uuid.UUID, item *models.InventoryItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, itemKey(hotelID, item.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteItem(ctx context.Context, hotelID, itemID uuid.UUID) error {
	return r.client.Del(ctx, itemKey(hotelID, itemID)).Err()
}
