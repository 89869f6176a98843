package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret", "1h", "168h")
}

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "dewi@example.com", user.RoleHRD)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "dewi@example.com", claims["email"])
	assert.Equal(t, "hrd", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	tokenString, _, err := svc.GenerateRefreshToken("user-2")
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-2", claims["user_id"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	tokenString, _, err := svc.GenerateAccessToken("user-1", "a@b.c", user.RoleUser)
	require.NoError(t, err)

	other := NewJWTService("another-secret", "1h", "168h")
	_, err = jwtauth.VerifyToken(other.JWTAuth(), tokenString)
	assert.Error(t, err)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("test-secret", "not-a-duration", "168h")
	_, _, err := svc.GenerateAccessToken("user-1", "a@b.c", user.RoleUser)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	tokenString, _, err := svc.GenerateRefreshToken("user-3")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	cookie := svc.RefreshTokenCookie("tok", time.Now().Add(time.Hour).Unix())

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
}
