package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RoundTrip(t *testing.T) {
	auth := NewAuthService("secret")

	token, err := auth.GenerateJWT("user-42")
	require.NoError(t, err)

	userID, err := auth.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestAuthService_ValidateJWT_Invalid(t *testing.T) {
	auth := NewAuthService("secret")

	otherSecret, err := NewAuthService("other").GenerateJWT("user-42")
	require.NoError(t, err)

	expiredAuth := NewAuthService("secret")
	expiredAuth.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := expiredAuth.GenerateJWT("user-42")
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "user-42",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: otherSecret},
		{name: "expired", token: expired},
		{name: "missing user_id", token: noUser},
		{name: "none algorithm", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := auth.ValidateJWT(tt.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Empty(t, userID)
		})
	}
}
