package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		UserID:     7,
		UserEmail:  "analista@example.com",
		UserRoleID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func newTestService(secret string) Authenticator {
	return NewService(&config.Config{Auth: config.Auth{Secret: secret}})
}

func TestValidateToken(t *testing.T) {
	service := newTestService(testSecret)

	t.Run("token válido devolve as claims", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))

		claims, err := service.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "analista@example.com", claims.UserEmail)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("token expirado", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour))

		_, err := service.ValidateToken(token)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrExpiredToken))

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, "AUTH_007", authErr.APICode())
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, []byte("outro"), time.Now().Add(time.Hour))

		_, err := service.ValidateToken(token)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.True(t, IsTokenError(err))
	})

	t.Run("algoritmo none é rejeitado", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Now().Add(time.Hour))

		_, err := service.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token vazio", func(t *testing.T) {
		_, err := service.ValidateToken("  ")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateTokenWithoutSecret(t *testing.T) {
	service := newTestService("")
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))

	_, err := service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
