package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"camping_arequita/internal/adapters/observability"
)

type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, _ := json.Marshal(v)
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, time.Duration(ttlSec)*time.Second).Err()
}

func (r *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("redis", "del")
	return r.c.Del(ctx, key).Err()
}

// Prefs persists UI preferences on the same redis instance, standing in for
// the browser's localStorage. Values live under a prefix and never expire.
type Prefs struct{ c *redis.Client }

func (r *Cache) Prefs() *Prefs { return &Prefs{c: r.c} }

func (p *Prefs) Read(ctx context.Context, key string) (string, error) {
	v, err := p.c.Get(ctx, "prefs:"+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (p *Prefs) Write(ctx context.Context, key, value string) error {
	return p.c.Set(ctx, "prefs:"+key, value, 0).Err()
}
