package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindow - лимитер с фиксированным окном в памяти процесса.
// В каждом окне пропускается permits запросов на ключ, еще до queueLimit
// запросов ждут начала следующего окна, остальные отклоняются.
type FixedWindow struct {
	permits    int
	window     time.Duration
	queueLimit int

	mu        sync.Mutex
	entries   map[string]*windowEntry
	lastSweep time.Time
	now       func() time.Time
}

type windowEntry struct {
	start time.Time
	// count - выданные разрешения в текущем окне
	count int
	// reserved - разрешения следующего окна, уже отданные ожидающим
	reserved int
}

func NewFixedWindow(permits int, window time.Duration, queueLimit int) *FixedWindow {
	return &FixedWindow{
		permits:    permits,
		window:     window,
		queueLimit: queueLimit,
		entries:    make(map[string]*windowEntry),
		now:        time.Now,
	}
}

func (l *FixedWindow) Allow(ctx context.Context, key string) (Decision, error) {
	l.mu.Lock()

	now := l.now()
	l.sweep(now)

	start, remaining := windowBounds(now, l.window)
	entry := l.advance(key, start)

	if entry.count < l.permits {
		entry.count++
		l.mu.Unlock()
		return Decision{Allowed: true}, nil
	}

	if entry.reserved >= l.queueLimit || entry.reserved >= l.permits {
		l.mu.Unlock()
		return Decision{RetryAfter: remaining}, nil
	}

	entry.reserved++
	l.mu.Unlock()

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
		l.mu.Lock()
		l.advance(key, l.now().Truncate(l.window))
		l.mu.Unlock()
		return Decision{Allowed: true}, nil
	case <-ctx.Done():
		l.release(key, start)
		return Decision{RetryAfter: remaining}, ctx.Err()
	}
}

// advance переводит запись ключа в окно start, перенося резерв ожидающих в счетчик.
// Вызывается под мьютексом.
func (l *FixedWindow) advance(key string, start time.Time) *windowEntry {
	entry, ok := l.entries[key]
	if !ok {
		entry = &windowEntry{start: start}
		l.entries[key] = entry
		return entry
	}

	if !entry.start.Before(start) {
		return entry
	}

	if entry.start.Add(l.window).Equal(start) {
		entry.count = entry.reserved
	} else {
		entry.count = 0
	}
	entry.reserved = 0
	entry.start = start

	return entry
}

// release возвращает резерв ожидающего, который ушел по отмене контекста
func (l *FixedWindow) release(key string, start time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[key]
	if !ok {
		return
	}

	switch {
	case entry.start.Equal(start) && entry.reserved > 0:
		entry.reserved--
	case entry.start.Equal(start.Add(l.window)) && entry.count > 0:
		entry.count--
	}
}

// sweep удаляет записи, не тронутые дольше двух окон. Вызывается под мьютексом.
func (l *FixedWindow) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now

	cutoff := now.Add(-2 * l.window)
	for key, entry := range l.entries {
		if entry.start.Before(cutoff) {
			delete(l.entries, key)
		}
	}
}
