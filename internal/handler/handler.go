package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/referral-service/internal/config/db"
	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/middleware"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/response"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery --name ReferralService

// ReferralService - операции реферальной программы. Идентификатор пользователя
// всегда передается явно.
type ReferralService interface {
	GetReferralCode(ctx context.Context, userID string) (model.ReferralCode, error)
	GenerateReferralLink(ctx context.Context, userID string, method model.ShareMethod) (model.GeneratedLink, error)
	GetReferralHistory(ctx context.Context, userID string) ([]model.ReferralHistoryEntry, error)
	ValidateReferralCode(ctx context.Context, code string) (model.ReferralValidation, error)
}

// Handler обрабатывает HTTP запросы реферального API
type Handler struct {
	service  ReferralService
	logger   *zap.Logger
	db       db.Database
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// New создает новый экземпляр Handler. db и metrics могут быть nil.
func New(service ReferralService, logger *zap.Logger, database db.Database, m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		db:       database,
		metrics:  m,
		validate: validator.New(),
	}
}

// userIDFromRequest возвращает пользователя, определенного middleware.Identity
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeError(w, http.StatusUnauthorized, model.ErrorCodeUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}

// handleError переводит ошибку сервиса в HTTP ответ
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var referralErr usecase.ReferralError
	if errors.As(err, &referralErr) {
		status := statusFor(referralErr.Code)
		if status >= http.StatusInternalServerError {
			h.logger.Error("referral operation failed", zap.Error(err))
		} else {
			h.logger.Debug("referral operation rejected", zap.Error(err))
		}
		h.writeError(w, status, referralErr.Code, referralErr.Message)
		return
	}

	h.logger.Error("internal error", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, model.ErrorCodeInternal, "Internal server error")
}

func statusFor(code model.ErrorCode) int {
	switch code {
	case model.ErrorCodeInvalidCode, model.ErrorCodeNotFound:
		return http.StatusNotFound
	case model.ErrorCodeInvalidShareMethod:
		return http.StatusBadRequest
	case model.ErrorCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case model.ErrorCodeLinkGenerationFailed:
		return http.StatusBadGateway
	case model.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	if err := response.WriteJSON(w, status, body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code model.ErrorCode, message string) {
	if err := response.WriteError(w, status, code, message); err != nil {
		h.logger.Error("failed to encode error response", zap.Error(err))
	}
}

// NotFound отвечает на неизвестный маршрут
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, model.ErrorCodeNotFound, "Resource not found")
}

// MethodNotAllowed отвечает на неподдерживаемый метод известного маршрута
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusMethodNotAllowed, model.ErrorCodeMethodNotAllowed, "Method not allowed")
}
