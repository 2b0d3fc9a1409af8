package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/redis/go-redis/v9"

	"citadels-console/internal/engine"
)

const (
	redisKeyPrefix = "citadels:snapshot:"
	redisIndexKey  = "citadels:snapshots"
)

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis stores each snapshot as a JSON string and keeps the names in a set.
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

// NewRedisFromURL connects to url (redis://host:port/db) and checks the
// connection.
func NewRedisFromURL(ctx context.Context, url string) (Repository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedis(client), nil
}

func (r *redisRepo) Save(ctx context.Context, name string, s *engine.Snapshot) error {
	key, err := normalizeName(name)
	if err != nil {
		return err
	}
	data, err := encode(s)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, redisKeyPrefix+key, string(data), 0)
	pipe.SAdd(ctx, redisIndexKey, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save snapshot in Redis: %w", err)
	}
	return nil
}

func (r *redisRepo) Load(ctx context.Context, name string) (*engine.Snapshot, error) {
	key, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot from Redis: %w", err)
	}
	return decode(data)
}

func (r *redisRepo) List(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots from Redis: %w", err)
	}
	slices.Sort(names)
	return names, nil
}

func (r *redisRepo) Close() error {
	return r.client.Close()
}
