package handler

import (
	"net/http"

	"github.com/avc-dev/referral-service/internal/model"
)

// GetReferralHistory обрабатывает GET /v1/referrals/history.
// Пустая история отдается как [], не null.
func (h *Handler) GetReferralHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	history, err := h.service.GetReferralHistory(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if history == nil {
		history = []model.ReferralHistoryEntry{}
	}

	h.writeJSON(w, http.StatusOK, history)
}
