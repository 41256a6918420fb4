package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/airseating/config"
	"github.com/Domenick1991/airseating/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	cardsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, cardsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		cardsTTL: cardsTTL,
	}
}

// GetCards returns nil, nil on a cache miss.
func (c *RedisCache) GetCards(ctx context.Context, flightNumber string) ([]domain.BoardingCard, error) {
	data, err := c.client.Get(ctx, cardsKey(flightNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cards []domain.BoardingCard
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *RedisCache) SetCards(ctx context.Context, flightNumber string, cards []domain.BoardingCard) error {
	payload, err := json.Marshal(cards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cardsKey(flightNumber), payload, c.cardsTTL).Err()
}

func (c *RedisCache) InvalidateCards(ctx context.Context, flightNumber string) error {
	return c.client.Del(ctx, cardsKey(flightNumber)).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func cardsKey(flightNumber string) string {
	return "cache:cards:" + flightNumber
}
