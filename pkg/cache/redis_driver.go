package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/josbet/floreria/config"
)

type redisDriver struct {
	rdb *redis.Client
	ctx context.Context
}

func newRedisDriver() (*redisDriver, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisDriver{rdb: rdb, ctx: ctx}, nil
}

func (d *redisDriver) Get(key string, dest interface{}) bool {
	val, err := d.rdb.Get(d.ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (d *redisDriver) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return d.rdb.Set(d.ctx, key, data, ttl).Err()
}

func (d *redisDriver) Del(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return d.rdb.Del(d.ctx, keys...).Err()
}
