package cache

import (
	"context"
	"errors"
	"fmt"

	"recipe-scaler/internal/infrastructure/config"
)

// ErrMiss 快取未命中
var ErrMiss = errors.New("cache miss")

// Store 快取介面，值為序列化後的位元組
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// NewStore 依設定建立快取；停用時返回 nil
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	switch cfg.Cache.Driver {
	case "", "memory":
		return NewManager(cfg.Cache), nil
	case "redis":
		s, err := NewRedisStore(ctx, cfg.Redis, cfg.Cache.TTL)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}
