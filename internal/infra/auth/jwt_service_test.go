package auth

import (
	"testing"
	"time"

	"vidtube/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, "access", accessClaims.Type)
	assert.WithinDuration(t, time.Now().Add(time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_ClaimNames(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)

	for token, wantType := range map[string]string{accessToken: "access", refreshToken: "refresh"} {
		claims := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(token, claims)
		require.NoError(t, err)

		assert.Equal(t, wantType, claims["type"])
		assert.NotContains(t, claims, "typ")
		assert.Equal(t, userID.String(), claims["sub"])
		assert.NotEmpty(t, claims["jti"])
		assert.Contains(t, claims, "iat")
		assert.Contains(t, claims, "exp")
	}
}

func TestJWTService_TokensAreUniquePerIssue(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	_, first, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	_, second, err := svc.GenerateTokens(userID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_RejectsWrongKind(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err, "access token signed with the access secret must not pass as refresh")

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTypeClaimMismatch(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Signed with the access secret but claiming to be a refresh token.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Minute).Unix(),
		"type": "refresh",
	})
	signed, err := forged.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.ErrorIs(t, err, ErrTokenType)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": "access",
	})
	expiredToken, err := expired.SignedString([]byte(cfg.SecretKey.Access))
	require.NoError(t, err)

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "access",
	})
	noneToken, err := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "expired", token: expiredToken},
		{name: "none algorithm", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateAccessToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecrets(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_Durations(t *testing.T) {
	t.Parallel()

	configured, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, configured.GetAccessTokenDuration())
	assert.Equal(t, time.Hour, configured.GetRefreshTokenDuration())

	cfg := newTestConfig()
	cfg.Auth = nil
	defaults, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, defaults.GetAccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, defaults.GetRefreshTokenDuration())
}
