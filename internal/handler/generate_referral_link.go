package handler

import (
	"net/http"

	"github.com/avc-dev/referral-service/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MyCodePath - ресурс, на который указывает Location созданной ссылки
const MyCodePath = "/v1/referrals/my-code"

const invalidShareMethodMessage = "Invalid share method specified"

// GenerateReferralLink обрабатывает POST /v1/referrals/generate-link/{shareMethod}
func (h *Handler) GenerateReferralLink(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "shareMethod")

	method, ok := model.ParseShareMethod(raw)
	if !ok {
		h.logger.Debug("invalid share method", zap.String("share_method", raw))
		h.writeError(w, http.StatusBadRequest, model.ErrorCodeInvalidShareMethod, invalidShareMethodMessage)
		return
	}

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	link, err := h.service.GenerateReferralLink(r.Context(), userID, method)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.metrics.LinkGenerated(method.String())

	w.Header().Set("Location", MyCodePath)
	h.writeJSON(w, http.StatusCreated, link)
}
