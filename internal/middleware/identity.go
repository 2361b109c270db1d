package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/response"
	"go.uber.org/zap"
)

// identityKey is the context key for the resolved caller identity
type identityKey struct{}

// Identity - вызывающий пользователь
type Identity struct {
	UserID string
	// Authenticated - user_id подтвержден подписанным токеном. Заголовок
	// может подставить любой клиент, поэтому такой пользователь не подтвержден
	Authenticated bool
}

// TokenValidator проверяет bearer-токен и возвращает user_id
type TokenValidator interface {
	ValidateJWT(token string) (string, error)
}

// IdentityConfig - источники идентификатора пользователя
type IdentityConfig struct {
	// Header - доверенный заголовок с user_id от шлюза, пусто - не используется
	Header        string
	DefaultUserID string
	RequireAuth   bool
}

// IdentityMiddleware определяет пользователя запроса и кладет его в контекст
type IdentityMiddleware struct {
	validator TokenValidator
	cfg       IdentityConfig
	logger    *zap.Logger
}

// NewIdentityMiddleware создает новый экземпляр IdentityMiddleware
func NewIdentityMiddleware(validator TokenValidator, cfg IdentityConfig, logger *zap.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{
		validator: validator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Handler порядок: Authorization: Bearer <jwt>, затем доверенный заголовок,
// затем пользователь по умолчанию, если аутентификация не обязательна
func (im *IdentityMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := im.resolve(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func (im *IdentityMiddleware) resolve(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	if authorization := r.Header.Get("Authorization"); authorization != "" {
		scheme, token, found := strings.Cut(authorization, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			im.unauthorized(w, "Unsupported authorization scheme")
			return Identity{}, false
		}

		userID, err := im.validator.ValidateJWT(strings.TrimSpace(token))
		if err != nil {
			im.logger.Debug("invalid bearer token",
				zap.Error(err),
				zap.String("remote_addr", r.RemoteAddr),
			)
			im.unauthorized(w, "Invalid or expired access token")
			return Identity{}, false
		}

		return Identity{UserID: userID, Authenticated: true}, true
	}

	if im.cfg.Header != "" {
		if userID := strings.TrimSpace(r.Header.Get(im.cfg.Header)); userID != "" {
			return Identity{UserID: userID}, true
		}
	}

	if im.cfg.RequireAuth || im.cfg.DefaultUserID == "" {
		im.unauthorized(w, "Authentication required")
		return Identity{}, false
	}

	return Identity{UserID: im.cfg.DefaultUserID}, true
}

func (im *IdentityMiddleware) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="referrals"`)
	if err := response.WriteError(w, http.StatusUnauthorized, model.ErrorCodeUnauthorized, message); err != nil {
		im.logger.Error("failed to write unauthorized response", zap.Error(err))
	}
}

// WithIdentity возвращает контекст с пользователем запроса
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext извлекает пользователя запроса из контекста
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(Identity)
	return identity, ok
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.UserID == "" {
		return "", false
	}
	return identity.UserID, true
}
