// Package stats keeps request counters in redis.
package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/customer-dashboard/internal/domain/entity"
)

// Event is one served request
type Event struct {
	Method string
	Route  string
	Status int
	At     time.Time
}

// RedisStore accumulates counters in three hashes:
//
//	{prefix}:total               requests and status class totals, never expires
//	{prefix}:route               "METHOD /route:class" counters, never expires
//	{prefix}:minute:YYYYMMDDhhmm per-minute totals, expire after ttl
type RedisStore struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

type Option func(*RedisStore)

func WithPrefix(prefix string) Option {
	return func(s *RedisStore) { s.prefix = strings.Trim(prefix, ":") }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *RedisStore) { s.ttl = ttl }
}

func NewRedisStore(rdb *redis.Client, opts ...Option) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		prefix: "dashboard:stats",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int, logger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connection established", zap.String("addr", addr))
	return client, nil
}

func statusClass(status int) string {
	return strconv.Itoa(status/100) + "xx"
}

// Record adds one request to every counter in a single pipeline round trip
func (s *RedisStore) Record(ctx context.Context, ev Event) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	class := statusClass(ev.Status)

	pipe := s.rdb.Pipeline()

	totalKey := s.prefix + ":total"
	pipe.HIncrBy(ctx, totalKey, "requests", 1)
	pipe.HIncrBy(ctx, totalKey, class, 1)

	if route := strings.TrimSpace(ev.Method + " " + ev.Route); route != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", route+":"+class, 1)
	}

	bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
	pipe.HIncrBy(ctx, bucketKey, "requests", 1)
	pipe.HIncrBy(ctx, bucketKey, class, 1)
	if s.ttl > 0 {
		pipe.Expire(ctx, bucketKey, s.ttl)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Snapshot reads the cumulative counters
func (s *RedisStore) Snapshot(ctx context.Context) (*entity.RequestStats, error) {
	total, err := s.readHash(ctx, s.prefix+":total")
	if err != nil {
		return nil, err
	}
	routes, err := s.readHash(ctx, s.prefix+":route")
	if err != nil {
		return nil, err
	}
	return &entity.RequestStats{Total: total, Routes: routes}, nil
}

func (s *RedisStore) readHash(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid counter %s[%s]: %w", key, field, err)
		}
		out[field] = n
	}
	return out, nil
}
