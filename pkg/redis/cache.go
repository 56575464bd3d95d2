package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savioruz/kickmatch/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/savioruz/kickmatch/pkg/redis IRedisCache

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = redis.Nil

type IRedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type iRedisCacheImpl struct {
	client *redis.Client
	log    logger.Interface
}

func NewRedisCache(r *Redis, log logger.Interface) IRedisCache {
	return &iRedisCacheImpl{
		client: r.Client,
		log:    log,
	}
}

// Clear removes every key starting with prefix.
func (i *iRedisCacheImpl) Clear(ctx context.Context, prefix string) (err error) {
	iter := i.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		if err = i.client.Del(ctx, key).Err(); err != nil {
			i.log.Error("redis - clear - failed to delete cache: %v", err)

			return err
		}
	}

	return iter.Err()
}

// Delete implements IRedisCache.
func (i *iRedisCacheImpl) Delete(ctx context.Context, key string) error {
	if err := i.client.Del(ctx, key).Err(); err != nil {
		i.log.Error("redis - delete - failed to delete cache: %v", err)

		return err
	}

	return nil
}

// Get implements IRedisCache.
func (i *iRedisCacheImpl) Get(ctx context.Context, key string, value any) (err error) {
	cacheValue, err := i.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			i.log.Warn("redis - get - failed to read %s: %v", key, err)
		}

		return err
	}

	switch v := value.(type) {
	case *string:
		*v = cacheValue
	default:
		if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
			i.log.Error("redis - get - failed to unmarshal value: %v", err)

			return err
		}
	}

	return nil
}

// Save implements IRedisCache.
func (i *iRedisCacheImpl) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte

	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			i.log.Error("redis - save - failed to marshal value: %v", err)

			return err
		}
	}

	err = i.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err()
	if err != nil {
		i.log.Error("redis - save - failed to save value: %v", err)

		return err
	}

	i.log.Debug("redis - save - saved value %s", key)

	return nil
}
