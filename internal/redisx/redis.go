package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

func New(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}
