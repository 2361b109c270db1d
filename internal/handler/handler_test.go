package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/referral-service/internal/middleware"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = "user-1"

// withUser кладет пользователя в контекст так, как это делает middleware.Identity
func withUser(req *http.Request, userID string) *http.Request {
	ctx := middleware.WithIdentity(req.Context(), middleware.Identity{UserID: userID, Authenticated: true})
	return req.WithContext(ctx)
}

// withURLParam добавляет параметр маршрута chi
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorPayload {
	t.Helper()

	var payload model.ErrorPayload
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payload))
	return payload
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    model.ErrorCode
		wantMessage string
	}{
		{
			name:        "invalid code",
			err:         usecase.NewInvalidCodeError("AB12CD"),
			wantStatus:  http.StatusNotFound,
			wantCode:    model.ErrorCodeInvalidCode,
			wantMessage: "The specified referral code was not found",
		},
		{
			name:        "link generation failed",
			err:         usecase.NewLinkGenerationError(errors.New("disk full")),
			wantStatus:  http.StatusBadGateway,
			wantCode:    model.ErrorCodeLinkGenerationFailed,
			wantMessage: usecase.MessageLinkGenerationFailed,
		},
		{
			name:        "wrapped referral error",
			err:         errors.Join(errors.New("context"), usecase.NewInvalidCodeError("AB12CD")),
			wantStatus:  http.StatusNotFound,
			wantCode:    model.ErrorCodeInvalidCode,
			wantMessage: usecase.MessageInvalidCode,
		},
		{
			name:        "unexpected error",
			err:         usecase.ErrServiceUnavailable,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    model.ErrorCodeInternal,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := New(nil, zap.NewNop(), nil, nil)
			w := httptest.NewRecorder()

			// Act
			h.handleError(w, tt.err)

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			payload := decodeError(t, w)
			assert.Equal(t, tt.wantCode, payload.Code)
			assert.Equal(t, tt.wantMessage, payload.Message)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := map[model.ErrorCode]int{
		model.ErrorCodeInvalidCode:          http.StatusNotFound,
		model.ErrorCodeInvalidShareMethod:   http.StatusBadRequest,
		model.ErrorCodeRateLimitExceeded:    http.StatusTooManyRequests,
		model.ErrorCodeLinkGenerationFailed: http.StatusBadGateway,
		model.ErrorCodeUnauthorized:         http.StatusUnauthorized,
		model.ErrorCodeNotFound:             http.StatusNotFound,
		model.ErrorCodeInternal:             http.StatusInternalServerError,
	}

	for code, want := range tests {
		assert.Equal(t, want, statusFor(code), code.String())
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := New(nil, zap.NewNop(), nil, nil)

	w := httptest.NewRecorder()
	h.NotFound(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, model.ErrorCodeNotFound, decodeError(t, w).Code)

	w = httptest.NewRecorder()
	h.MethodNotAllowed(w, httptest.NewRequest(http.MethodDelete, "/v1/referrals/my-code", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, model.ErrorCodeMethodNotAllowed, decodeError(t, w).Code)
}

func TestUserIDMissing(t *testing.T) {
	h := New(nil, zap.NewNop(), nil, nil)
	handlers := map[string]http.HandlerFunc{
		"my-code": h.GetReferralCode,
		"history": h.GetReferralHistory,
	}

	for name, handle := range handlers {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handle(w, httptest.NewRequest(http.MethodGet, "/v1/referrals/"+name, nil))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, model.ErrorCodeUnauthorized, decodeError(t, w).Code)
		})
	}
}
