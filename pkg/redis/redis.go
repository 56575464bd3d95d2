package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	_defaultDialTimeout = 5 * time.Second
	_defaultIOTimeout   = 3 * time.Second
)

type Redis struct {
	Client *redis.Client
}

type Option func(*redis.Options)

func Password(password string) Option {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func DB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

// PoolSize keeps go-redis' per-CPU default when size is not positive.
func PoolSize(size int) Option {
	return func(o *redis.Options) {
		if size > 0 {
			o.PoolSize = size
		}
	}
}

func New(addr string, opts ...Option) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis: empty address")
	}

	options := &redis.Options{
		Addr:         addr,
		DialTimeout:  _defaultDialTimeout,
		ReadTimeout:  _defaultIOTimeout,
		WriteTimeout: _defaultIOTimeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Redis{Client: redis.NewClient(options)}, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}

	return nil
}
