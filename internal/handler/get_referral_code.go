package handler

import (
	"net/http"
)

// GetReferralCode обрабатывает GET /v1/referrals/my-code
func (h *Handler) GetReferralCode(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	code, err := h.service.GetReferralCode(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, code)
}
