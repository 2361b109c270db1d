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

func TestValidateReferralCode_Valid(t *testing.T) {
	// Arrange
	flow := model.OnboardingFlowReferred
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		ValidateReferralCode(mock.Anything, "XY7G4D").
		Return(model.ReferralValidation{
			IsValid:        true,
			ReferrerSchool: model.StringPtr("Lincoln Elementary"),
			OnboardingFlow: &flow,
		}, nil).
		Once()

	h := New(mockService, zap.NewNop(), nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/referrals/validate/XY7G4D", nil)
	req = withURLParam(req, "code", "XY7G4D")
	w := httptest.NewRecorder()

	// Act
	h.ValidateReferralCode(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, map[string]any{
		"isValid":        true,
		"referrerSchool": "Lincoln Elementary",
		"onboardingFlow": "referred_user",
	}, body)
}

func TestValidateReferralCode_NotFound(t *testing.T) {
	// Arrange
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		ValidateReferralCode(mock.Anything, "AB12CD").
		Return(model.ReferralValidation{}, usecase.NewInvalidCodeError("AB12CD")).
		Once()

	h := New(mockService, zap.NewNop(), nil, nil)
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/referrals/validate/AB12CD", nil), "code", "AB12CD")
	w := httptest.NewRecorder()

	// Act
	h.ValidateReferralCode(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
	payload := decodeError(t, w)
	assert.Equal(t, model.ErrorCodeInvalidCode, payload.Code)
	assert.Equal(t, "The specified referral code was not found", payload.Message)
}

// Код неверного формата отклоняется так же, как ненайденный, без вызова сервиса
func TestValidateReferralCode_InvalidFormat(t *testing.T) {
	codes := []string{"xy7g4d", "XY7-G4D", "XY7 G4D", "SHORT", "TOOLONGCODE", "", "XY7G4Ж"}

	for _, code := range codes {
		t.Run(code, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockReferralService(t)
			h := New(mockService, zap.NewNop(), nil, nil)
			req := withURLParam(httptest.NewRequest(http.MethodGet, "/v1/referrals/validate/x", nil), "code", code)
			w := httptest.NewRecorder()

			// Act
			h.ValidateReferralCode(w, req)

			// Assert
			assert.Equal(t, http.StatusNotFound, w.Code)
			payload := decodeError(t, w)
			assert.Equal(t, model.ErrorCodeInvalidCode, payload.Code)
			assert.Equal(t, usecase.MessageInvalidCode, payload.Message)
			mockService.AssertNotCalled(t, "ValidateReferralCode", mock.Anything, mock.Anything)
		})
	}
}
