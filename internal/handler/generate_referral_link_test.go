package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/mocks"
	"github.com/avc-dev/referral-service/internal/model"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLink = "https://cartoncaps.link/abfilefa90p?referral_code=XY7G4D"

func TestGenerateReferralLink_Success(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		wantMethod model.ShareMethod
	}{
		{name: "text", param: "text", wantMethod: model.ShareMethodText},
		{name: "email", param: "email", wantMethod: model.ShareMethodEmail},
		{name: "share", param: "share", wantMethod: model.ShareMethodShare},
		{name: "upper case", param: "EMAIL", wantMethod: model.ShareMethodEmail},
		{name: "mixed case", param: "Text", wantMethod: model.ShareMethodText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockReferralService(t)
			mockService.EXPECT().
				GenerateReferralLink(mock.Anything, testUserID, tt.wantMethod).
				Return(model.GeneratedLink{ReferralLink: testLink}, nil).
				Once()

			h := New(mockService, zap.NewNop(), nil, nil)
			req := httptest.NewRequest(http.MethodPost, "/v1/referrals/generate-link/"+tt.param, nil)
			req = withURLParam(withUser(req, testUserID), "shareMethod", tt.param)
			w := httptest.NewRecorder()

			// Act
			h.GenerateReferralLink(w, req)

			// Assert
			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusCreated, resp.StatusCode)
			assert.Equal(t, "/v1/referrals/my-code", resp.Header.Get("Location"))

			var body model.GeneratedLink
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, testLink, body.ReferralLink)
		})
	}
}

func TestGenerateReferralLink_InvalidShareMethod(t *testing.T) {
	for _, param := range []string{"sms", "", "texts", "e-mail"} {
		t.Run(param, func(t *testing.T) {
			// Arrange
			mockService := mocks.NewMockReferralService(t)
			h := New(mockService, zap.NewNop(), nil, nil)
			req := httptest.NewRequest(http.MethodPost, "/v1/referrals/generate-link/x", nil)
			req = withURLParam(withUser(req, testUserID), "shareMethod", param)
			w := httptest.NewRecorder()

			// Act
			h.GenerateReferralLink(w, req)

			// Assert
			assert.Equal(t, http.StatusBadRequest, w.Code)
			payload := decodeError(t, w)
			assert.Equal(t, model.ErrorCodeInvalidShareMethod, payload.Code)
			assert.Equal(t, "Invalid share method specified", payload.Message)
			mockService.AssertNotCalled(t, "GenerateReferralLink", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGenerateReferralLink_Failure(t *testing.T) {
	// Arrange
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		GenerateReferralLink(mock.Anything, testUserID, model.ShareMethodShare).
		Return(model.GeneratedLink{}, usecase.NewLinkGenerationError(errors.New("insert failed"))).
		Once()

	h := New(mockService, zap.NewNop(), nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/referrals/generate-link/share", nil)
	req = withURLParam(withUser(req, testUserID), "shareMethod", "share")
	w := httptest.NewRecorder()

	// Act
	h.GenerateReferralLink(w, req)

	// Assert
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, model.ErrorCodeLinkGenerationFailed, decodeError(t, w).Code)
}

func TestGenerateReferralLink_CountsLinks(t *testing.T) {
	// Arrange
	m := metrics.New()
	mockService := mocks.NewMockReferralService(t)
	mockService.EXPECT().
		GenerateReferralLink(mock.Anything, testUserID, model.ShareMethodEmail).
		Return(model.GeneratedLink{ReferralLink: testLink}, nil).
		Twice()

	h := New(mockService, zap.NewNop(), nil, m)

	// Act
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/v1/referrals/generate-link/email", nil)
		req = withURLParam(withUser(req, testUserID), "shareMethod", "email")
		h.GenerateReferralLink(httptest.NewRecorder(), req)
	}

	// Assert
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `referrals_links_generated_total{share_method="email"} 2`)
}
