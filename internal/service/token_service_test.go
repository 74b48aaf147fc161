package service

import (
	"context"
	"testing"
	"time"

	"arctic-chronicler/internal/config"
	"arctic-chronicler/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewTokenService_Config(t *testing.T) {
	_, err := NewTokenService(config.TokenConfig{Secret: "short"}, time.Hour)
	assert.Error(t, err)

	_, err = NewTokenService(config.TokenConfig{Secret: testSecret}, 0)
	assert.Error(t, err)

	_, err = NewTokenService(config.TokenConfig{Secret: testSecret}, time.Hour)
	assert.NoError(t, err)
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewTokenService(config.TokenConfig{Secret: testSecret, Issuer: "arctic-chronicler"}, 2*time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue("01HEXP")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "01HEXP", claims.ExpeditionID)
	assert.Equal(t, "arctic-chronicler", claims.Issuer)
}

func TestTokenService_Rejects(t *testing.T) {
	svc, err := NewTokenService(config.TokenConfig{Secret: testSecret, Issuer: "arctic-chronicler"}, time.Hour)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Validate(ctx, "not.a.token")
		requireCode(t, err, domain.CodeUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewTokenService(config.TokenConfig{Secret: testSecret + "x", Issuer: "arctic-chronicler"}, time.Hour)
		token, _, err := other.Issue("01HEXP")
		require.NoError(t, err)
		_, err = svc.Validate(ctx, token)
		requireCode(t, err, domain.CodeUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		impl := svc.(*tokenService)
		impl.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
		token, _, err := svc.Issue("01HEXP")
		impl.now = time.Now
		require.NoError(t, err)

		_, err = svc.Validate(ctx, token)
		requireCode(t, err, domain.CodeUnauthorized)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"expedition_id": "x", "iss": "arctic-chronicler"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Validate(ctx, signed)
		requireCode(t, err, domain.CodeUnauthorized)
	})

	t.Run("missing expedition id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss": "arctic-chronicler",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)
		_, err = svc.Validate(ctx, signed)
		requireCode(t, err, domain.CodeUnauthorized)
	})
}
