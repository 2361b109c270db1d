package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/ratelimit"
	"github.com/avc-dev/referral-service/internal/response"
	"go.uber.org/zap"
)

const rateLimitMessage = "Too many requests. Please try again later."

// RateLimitKey возвращает ключ вызывающего: user:<id> для аутентифицированных, иначе ip:<addr>
func RateLimitKey(r *http.Request) string {
	if identity, ok := IdentityFromContext(r.Context()); ok && identity.Authenticated {
		return "user:" + identity.UserID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// RateLimit отклоняет запросы сверх политики лимитера с 429 и заголовком Retry-After.
// Ошибки лимитера пропускают запрос.
func RateLimit(limiter ratelimit.Limiter, m *metrics.Metrics, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := RateLimitKey(r)

			decision, err := limiter.Allow(r.Context(), key)
			if err != nil {
				if r.Context().Err() != nil {
					// Клиент ушел, пока запрос ждал в очереди
					return
				}
				logger.Warn("rate limiter failed, allowing request",
					zap.String("key", key),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				m.RateLimitRejected()
				logger.Info("rate limit exceeded",
					zap.String("key", key),
					zap.Duration("retry_after", decision.RetryAfter),
				)

				w.Header().Set("Retry-After", retryAfterSeconds(decision.RetryAfter))
				if err := response.WriteError(w, http.StatusTooManyRequests, model.ErrorCodeRateLimitExceeded, rateLimitMessage); err != nil {
					logger.Error("failed to write rate limit response", zap.Error(err))
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds округляет вверх, не меньше 1 секунды
func retryAfterSeconds(d time.Duration) string {
	seconds := int(math.Ceil(d.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
