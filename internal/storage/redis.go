package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "brickgame:highscore:"

// keepMax stores ARGV[1] under KEYS[1] only if it beats the current value.
var keepMax = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[1]) or "0")
local score = tonumber(ARGV[1])
if score > current then
	redis.call("SET", KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// RedisStore keeps high scores as plain integer strings in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", addr, err)
	}

	return NewRedisStoreFromClient(client), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(gameID string) string {
	return redisKeyPrefix + gameID
}

// LoadHighScore reads the stored score; a missing key is 0.
func (s *RedisStore) LoadHighScore(ctx context.Context, gameID string) (int, error) {
	score, err := s.client.Get(ctx, redisKey(gameID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}
	return score, nil
}

// SaveHighScore raises the stored score to score atomically.
func (s *RedisStore) SaveHighScore(ctx context.Context, gameID string, score int) error {
	if err := keepMax.Run(ctx, s.client, []string{redisKey(gameID)}, score).Err(); err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
