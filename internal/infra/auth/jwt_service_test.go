package auth

import (
	"testing"
	"time"

	"roster/config"
	"roster/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(10 * time.Minute))
	require.NoError(t, err)
	require.NotNil(t, svc)

	publicID := "9f8e7d6c5b4a3928171a"

	token, err := svc.Issue(publicID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, publicID, claims.PublicID)
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(10 * time.Minute))
	require.NoError(t, err)

	publicID := "9f8e7d6c5b4a3928171a"

	token, err := svc.Issue(publicID)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	issued := time.Now()

	// Just inside the window the token still verifies.
	jwtSvc.now = func() time.Time { return issued.Add(9 * time.Minute) }
	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, publicID, claims.PublicID)

	// Past the window it fails with the expiry classification.
	jwtSvc.now = func() time.Time { return issued.Add(11 * time.Minute) }
	claims, err = svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(10 * time.Minute))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(10 * time.Minute))
	require.NoError(t, err)

	otherCfg := newTestJWTConfig(10 * time.Minute)
	otherCfg.SecretKey.Signing = "a_completely_different_signing_secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue("9f8e7d6c5b4a3928171a")
	require.NoError(t, err)

	// Signed with the wrong secret: rejected before any account lookup.
	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestJWTConfig(10 * time.Minute)
	cfg.SecretKey.Signing = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt signing secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := newTestJWTConfig(0)
	cfg.Auth = nil

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)
	assert.Equal(t, 10*time.Minute, jwtSvc.ttl)
}
