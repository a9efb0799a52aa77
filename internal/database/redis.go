package database

import (
	"context"
	"fmt"
	"log"

	"hirehub/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance backing the refresh-token
// store and verifies it with a ping.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	log.Printf("Connected to redis at %s, DB %d", cfg.Addr, cfg.DB)
	return rdb, nil
}
