package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/git-pkgs/jdks/internal/core"
)

// RedisStore keeps one Redis set of package keys per distribution.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to cfg.RedisURL and checks the connection.
func NewRedisStore(ctx context.Context, cfg Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return newRedisStore(client, cfg.Prefix), nil
}

func newRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) setKey(dist core.Distribution) string {
	return r.prefix + ":known:" + string(dist)
}

func (r *RedisStore) Contains(ctx context.Context, dist core.Distribution, key string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.setKey(dist), key).Result()
	if err != nil {
		return false, fmt.Errorf("redis sismember: %w", err)
	}
	return ok, nil
}

func (r *RedisStore) Add(ctx context.Context, pkgs ...*core.Package) error {
	groups := groupByDistribution(pkgs)
	if len(groups) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for dist, keys := range groups {
		members := make([]any, len(keys))
		for i, k := range keys {
			members[i] = k
		}
		pipe.SAdd(ctx, r.setKey(dist), members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis sadd: %w", err)
	}
	return nil
}

func (r *RedisStore) Keys(ctx context.Context, dist core.Distribution) ([]string, error) {
	keys, err := r.client.SMembers(ctx, r.setKey(dist)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	return keys, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Notifier returns a notifier publishing on channel over the store's
// connection.
func (r *RedisStore) Notifier(channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{client: r.client, channel: channel}
}

// RedisNotifier publishes each new package as JSON on a pub/sub channel.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func (n *RedisNotifier) Notify(ctx context.Context, pkgs []*core.Package) error {
	for _, p := range pkgs {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", p.Filename, err)
		}
		if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
			return fmt.Errorf("redis publish: %w", err)
		}
	}
	return nil
}
