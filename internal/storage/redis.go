package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "storefront:collection:"

// RedisStore keeps each collection as a single string key holding the JSON
// array. SET replaces the value in one command, which satisfies the
// whole-replace contract.
type RedisStore struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return &RedisStore{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisStore) Read(name string, out any) error {
	data, err := s.rdb.Get(s.ctx, redisKeyPrefix+name).Bytes()
	if err == redis.Nil {
		data = []byte("[]")
	} else if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	return json.Unmarshal(data, out)
}

func (s *RedisStore) Write(name string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", name, err)
	}
	if err := s.rdb.Set(s.ctx, redisKeyPrefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

// Close releases the Redis client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
