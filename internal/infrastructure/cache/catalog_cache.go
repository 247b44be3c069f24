// Package cache guarda la vitrina pública por dueño. Redis cuando hay REDIS_ADDR; si no, Noop.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/gestion-stock/internal/application/catalog"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
)

var (
	_ catalog.Cache = NoopCatalogCache{}
	_ catalog.Cache = (*RedisCatalogCache)(nil)
)

const keyPrefix = "catalog:"

// Key clave de Redis para el catálogo de un dueño.
func Key(ownerID string) string { return keyPrefix + ownerID }

// NoopCatalogCache nunca encuentra nada.
type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(_ context.Context, _ string) (*dto.CatalogResponse, bool, error) {
	return nil, false, nil
}

func (NoopCatalogCache) Set(_ context.Context, _ string, _ *dto.CatalogResponse, _ time.Duration) error {
	return nil
}

func (NoopCatalogCache) Invalidate(_ context.Context, _ string) error { return nil }

// RedisCatalogCache catálogo serializado en JSON con TTL.
type RedisCatalogCache struct {
	client *redis.Client
}

// NewRedisCatalogCache construye el cliente; no abre conexión hasta el primer comando (usar Ping).
func NewRedisCatalogCache(addr, password string, db int) *RedisCatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCatalogCache{client: client}
}

// NewRedisCatalogCacheFromClient usa un cliente existente (tests, clientes compartidos).
func NewRedisCatalogCacheFromClient(client *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{client: client}
}

func (c *RedisCatalogCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

func (c *RedisCatalogCache) Get(ctx context.Context, ownerID string) (*dto.CatalogResponse, bool, error) {
	val, err := c.client.Get(ctx, Key(ownerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var resp dto.CatalogResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		return nil, false, err
	}
	return &resp, true, nil
}

func (c *RedisCatalogCache) Set(ctx context.Context, ownerID string, value *dto.CatalogResponse, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(ownerID), payload, ttl).Err()
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, Key(ownerID)).Err()
}
