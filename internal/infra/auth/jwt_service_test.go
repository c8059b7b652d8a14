package auth

import (
	"testing"
	"time"

	"mirage/config"
	domainerrors "mirage/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Generate(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	jwtSvc := svc.(*jwtService)
	jwtSvc.now = func() time.Time { return issuedAt }

	token, err := jwtSvc.Generate(uuid.New())
	require.NoError(t, err)

	// 59 minutes after issuance the token is still accepted.
	jwtSvc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	claims, err := jwtSvc.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	// 61 minutes after issuance it is rejected.
	jwtSvc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	claims, err = jwtSvc.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
