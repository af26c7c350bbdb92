package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/HomeStay/internal/domain/contract"
	"github.com/mikiasgoitom/HomeStay/internal/domain/entity"
)

const homeListKey = "homes:list:all"

// HomeCacheStore caches listing reads in Redis as JSON.
type HomeCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

func NewHomeCacheStore(rdb *redis.Client) *HomeCacheStore {
	return &HomeCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   5 * time.Minute,
	}
}

var _ contract.IHomeCache = (*HomeCacheStore)(nil)

func homeDetailKey(id string) string { return fmt.Sprintf("home:id:%s", id) }

func (c *HomeCacheStore) GetHome(ctx context.Context, homeID string) (*entity.Home, bool, error) {
	var home entity.Home
	found, err := c.getJSON(ctx, homeDetailKey(homeID), &home)
	if err != nil || !found {
		return nil, false, err
	}
	return &home, true, nil
}

func (c *HomeCacheStore) SetHome(ctx context.Context, home *entity.Home) error {
	return c.setJSON(ctx, homeDetailKey(home.ID), home, c.detailTTL)
}

func (c *HomeCacheStore) InvalidateHome(ctx context.Context, homeID string) error {
	return c.rdb.Del(ctx, homeDetailKey(homeID)).Err()
}

func (c *HomeCacheStore) GetHomeList(ctx context.Context) ([]*entity.Home, bool, error) {
	var homes []*entity.Home
	found, err := c.getJSON(ctx, homeListKey, &homes)
	if err != nil || !found {
		return nil, false, err
	}
	return homes, true, nil
}

func (c *HomeCacheStore) SetHomeList(ctx context.Context, homes []*entity.Home) error {
	return c.setJSON(ctx, homeListKey, homes, c.listTTL)
}

func (c *HomeCacheStore) InvalidateHomeLists(ctx context.Context) error {
	return c.rdb.Del(ctx, homeListKey).Err()
}

// getJSON treats a missing key or an undecodable payload as a miss.
func (c *HomeCacheStore) getJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (c *HomeCacheStore) setJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}
