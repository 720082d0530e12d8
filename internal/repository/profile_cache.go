package repository

import (
	"career_match_backend/internal/matching"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

const profileKeyPrefix = "career_match:profile:"

// ProfileCache 以答题指纹缓存人格画像；Client 为 nil 时所有操作都是空操作
type ProfileCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{Client: rdb, TTL: ttl}
}

func (c *ProfileCache) Enabled() bool {
	return c != nil && c.Client != nil
}

// Get 未命中时返回 (nil, nil)
func (c *ProfileCache) Get(ctx context.Context, key string) (*matching.Profile, error) {
	if !c.Enabled() {
		return nil, nil
	}
	val, err := c.Client.Get(ctx, profileKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p matching.Profile
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		// 脏数据直接丢弃
		c.Client.Del(ctx, profileKeyPrefix+key)
		return nil, nil
	}
	return &p, nil
}

func (c *ProfileCache) Set(ctx context.Context, key string, p matching.Profile) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, profileKeyPrefix+key, b, c.TTL).Err()
}

// Flush 配置热更新后清空画像缓存
func (c *ProfileCache) Flush(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	iter := c.Client.Scan(ctx, 0, profileKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
