package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucket - лимитер на x/time/rate с отдельным ведром на ключ и очисткой неактивных ключей
type TokenBucket struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu        sync.Mutex
	entries   map[string]*bucketEntry
	lastSweep time.Time
	now       func() time.Time
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewTokenBucket пополняет ведро со скоростью permits за window, емкость ведра - permits
func NewTokenBucket(permits int, window time.Duration) *TokenBucket {
	return &TokenBucket{
		limit:   rate.Every(window / time.Duration(permits)),
		burst:   permits,
		idleTTL: 15 * time.Minute,
		entries: make(map[string]*bucketEntry),
		now:     time.Now,
	}
}

func (l *TokenBucket) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()
	lim := l.get(key, now)

	reservation := lim.ReserveN(now, 1)
	if !reservation.OK() {
		return Decision{}, nil
	}

	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return Decision{Allowed: true}, nil
	}

	reservation.CancelAt(now)
	return Decision{RetryAfter: delay}, nil
}

func (l *TokenBucket) get(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.idleTTL {
		l.lastSweep = now
		cutoff := now.Add(-l.idleTTL)
		for k, ent := range l.entries {
			if ent.lastSeen.Before(cutoff) {
				delete(l.entries, k)
			}
		}
	}

	if ent, ok := l.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.entries[key] = &bucketEntry{lim: lim, lastSeen: now}
	return lim
}
