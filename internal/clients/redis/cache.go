package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/robokit/robokit-backend/internal/logger"
	"github.com/robokit/robokit-backend/internal/types"
)

// CatalogCache keeps the parts catalog in redis so repeated /components and
// /config calls skip the database. Entirely optional: when REDIS_ADDR is not
// set the constructor errors and callers fall back to the repo.
type CatalogCache interface {
	GetCatalog(ctx context.Context) ([]types.Part, error)
	SetCatalog(ctx context.Context, parts []types.Part) error
	Invalidate(ctx context.Context) error
	Close() error
}

type catalogCache struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
	ttl time.Duration
}

func NewCatalogCache(log *logger.Logger) (CatalogCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &catalogCache{
		log: log.With("service", "CatalogCache"),
		rdb: rdb,
		key: "robokit:catalog",
		ttl: 10 * time.Minute,
	}, nil
}

func (c *catalogCache) GetCatalog(ctx context.Context) ([]types.Part, error) {
	if c == nil || c.rdb == nil {
		return nil, fmt.Errorf("catalog cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var parts []types.Part
	if err := json.Unmarshal(raw, &parts); err != nil {
		c.log.Warn("bad cached catalog payload, dropping", "error", err)
		_ = c.rdb.Del(ctx, c.key).Err()
		return nil, nil
	}
	return parts, nil
}

func (c *catalogCache) SetCatalog(ctx context.Context, parts []types.Part) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("catalog cache not initialized")
	}
	raw, err := json.Marshal(parts)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, raw, c.ttl).Err()
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key).Err()
}

func (c *catalogCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
