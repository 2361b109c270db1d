package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/referral-service/internal/mocks"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetReferralCode_Success(t *testing.T) {
	// Arrange
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		GetReferralCode(mock.Anything, testUserID).
		Return(model.ReferralCode{Code: "XY7G4D"}, nil).
		Once()

	h := New(mockService, zap.NewNop(), nil, nil)
	req := withUser(httptest.NewRequest(http.MethodGet, "/v1/referrals/my-code", nil), testUserID)
	w := httptest.NewRecorder()

	// Act
	h.GetReferralCode(w, req)

	// Assert
	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{"code": "XY7G4D"}, body)
}

func TestGetReferralCode_ServiceError(t *testing.T) {
	// Arrange
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		GetReferralCode(mock.Anything, testUserID).
		Return(model.ReferralCode{}, usecase.ErrServiceUnavailable).
		Once()

	h := New(mockService, zap.NewNop(), nil, nil)
	req := withUser(httptest.NewRequest(http.MethodGet, "/v1/referrals/my-code", nil), testUserID)
	w := httptest.NewRecorder()

	// Act
	h.GetReferralCode(w, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, model.ErrorCodeInternal, decodeError(t, w).Code)
}
