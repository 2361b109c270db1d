// Package ratelimit решает, можно ли пропустить запрос вызывающего с данным ключом.
package ratelimit

import (
	"context"
	"time"
)

// Decision - результат проверки лимита
type Decision struct {
	Allowed bool
	// RetryAfter - через сколько имеет смысл повторить запрос. 0, если рекомендации нет.
	RetryAfter time.Duration
}

//go:generate mockery --name Limiter

// Limiter принимает решение по ключу вызывающего (user:<id>, ip:<addr>)
type Limiter interface {
	// Allow может блокироваться, пока запрос ждет в очереди, и уважает отмену ctx
	Allow(ctx context.Context, key string) (Decision, error)
}

// Unlimited пропускает все запросы
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}

// windowBounds возвращает начало окна, содержащего now, и время до его конца
func windowBounds(now time.Time, window time.Duration) (time.Time, time.Duration) {
	start := now.Truncate(window)
	return start, start.Add(window).Sub(now)
}
