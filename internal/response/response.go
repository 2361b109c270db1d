// Package response пишет JSON-ответы в едином формате для обработчиков и миддлваров.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/referral-service/internal/model"
)

// WriteJSON пишет тело в JSON с указанным статусом.
// Ошибка кодирования возвращается вызывающему, заголовки к этому моменту уже отправлены.
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// WriteError пишет ошибку в формате {"code": ..., "message": ...}
func WriteError(w http.ResponseWriter, status int, code model.ErrorCode, message string) error {
	return WriteJSON(w, status, model.ErrorPayload{
		Code:    code,
		Message: message,
	})
}
