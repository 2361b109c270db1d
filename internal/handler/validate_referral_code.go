package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// codeFormat - 6 символов A-Z и 0-9
const codeFormat = "len=6,alphanum,uppercase"

// ValidateReferralCode обрабатывает GET /v1/referrals/validate/{code}.
// Код неверного формата отклоняется так же, как ненайденный, без обращения к сервису.
func (h *Handler) ValidateReferralCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.validate.Var(code, codeFormat); err != nil {
		h.logger.Debug("referral code has invalid format", zap.String("code", code))
		h.metrics.CodeValidated(metrics.ValidationInvalid)
		h.handleError(w, usecase.NewInvalidCodeError(code))
		return
	}

	validation, err := h.service.ValidateReferralCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCode) {
			h.metrics.CodeValidated(metrics.ValidationInvalid)
		}
		h.handleError(w, err)
		return
	}

	h.metrics.CodeValidated(metrics.ValidationValid)
	h.writeJSON(w, http.StatusOK, validation)
}
