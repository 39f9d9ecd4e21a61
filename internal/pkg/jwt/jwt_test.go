//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/antoninkin/parkmate-app/internal/pkg/clock"
	"github.com/antoninkin/parkmate-app/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("expired", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		svc := jwt.NewService("secret", time.Hour, clk)
		token, err := svc.GenerateToken(userID, "user")
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour, clock.NewMockClock(now)).GenerateToken(userID, "user")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		claims := jwt.Claims{
			UserID:           userID,
			Role:             "admin",
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour))},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("without expiry", func(t *testing.T) {
		claims := jwt.Claims{UserID: userID, Role: "user"}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour, clock.NewMockClock(now)).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
