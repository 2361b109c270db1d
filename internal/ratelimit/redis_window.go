package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindow - фиксированное окно, счетчик которого хранится в Redis
// и общий для всех экземпляров сервиса. Очереди нет.
type RedisWindow struct {
	rdb     redis.Cmdable
	permits int
	window  time.Duration
	prefix  string
	now     func() time.Time
}

type RedisWindowOption func(*RedisWindow)

func WithPrefix(prefix string) RedisWindowOption {
	return func(l *RedisWindow) { l.prefix = strings.Trim(prefix, ":") }
}

func NewRedisWindow(rdb redis.Cmdable, permits int, window time.Duration, opts ...RedisWindowOption) *RedisWindow {
	l := &RedisWindow{
		rdb:     rdb,
		permits: permits,
		window:  window,
		prefix:  "referrals:ratelimit",
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *RedisWindow) Allow(ctx context.Context, key string) (Decision, error) {
	start, remaining := windowBounds(l.now(), l.window)
	counterKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, start.UnixMilli())

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to increment window counter: %w", err)
	}

	if incr.Val() > int64(l.permits) {
		return Decision{RetryAfter: remaining}, nil
	}

	return Decision{Allowed: true}, nil
}
