package handler

import (
	"net/http"

	"github.com/avc-dev/referral-service/internal/model"
	"go.uber.org/zap"
)

// Ping проверяет соединение с базой данных, если она настроена
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, model.ErrorCodeInternal, "Database is unavailable")
		return
	}

	w.WriteHeader(http.StatusOK)
}
