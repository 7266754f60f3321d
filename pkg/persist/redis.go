package persist

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canvasflow/designer/pkg/errors"
)

// RedisBackend stores blobs as plain string values.
type RedisBackend struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisOptions configures a RedisBackend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// TTL expires saved canvases. Zero keeps them forever.
	TTL time.Duration
}

// NewRedisBackend connects to Redis and verifies the connection.
func NewRedisBackend(ctx context.Context, opts RedisOptions) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodePersistence, err, "connect to redis at %s", opts.Addr)
	}
	return &RedisBackend{client: client, ttl: opts.TTL}, nil
}

// NewRedisBackendFromClient wraps an existing client.
func NewRedisBackendFromClient(client *redis.Client, ttl time.Duration) *RedisBackend {
	return &RedisBackend{client: client, ttl: ttl}
}

func (b *RedisBackend) Name() string { return "redis" }

func (b *RedisBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodePersistence, err, "redis get %s", key)
	}
	return data, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, key string, data []byte) error {
	if err := b.client.Set(ctx, key, data, b.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodePersistence, err, "redis set %s", key)
	}
	return nil
}

func (b *RedisBackend) Remove(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(errors.ErrCodePersistence, err, "redis del %s", key)
	}
	return nil
}

func (b *RedisBackend) Close() error { return b.client.Close() }

var _ Backend = (*RedisBackend)(nil)
