package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/biolababs/serverless-trivia-game/pkg/config"
	"github.com/biolababs/serverless-trivia-game/pkg/progress"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RedisStore reads progression records stored as JSON strings under keyPrefix+playerName
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

// OpenRedis creates a client and verifies the server answers
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return NewRedisStore(client, cfg.KeyPrefix), nil
}

func (s *RedisStore) key(playerName string) string {
	return s.keyPrefix + playerName
}

func (s *RedisStore) Get(ctx context.Context, playerName string) (progress.Record, bool, error) {
	data, err := s.client.Get(ctx, s.key(playerName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return progress.Record{}, false, nil
	}
	if err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, err)
	}

	var rec progress.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return progress.Record{}, false, progress.NewLookupError(playerName, fmt.Errorf("failed to decode value: %w", err))
	}
	return rec, true, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
