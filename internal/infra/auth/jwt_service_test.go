package auth

import (
	"testing"
	"time"

	"gamestore/config"
	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"
	cfg.SecretKey.Reset = "test_reset_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()

	token, err := jwtService.GenerateSessionToken(accountID, entity.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, service.TokenTypeSession, claims.Type)
}

func TestJWTService_GenerateAndValidateResetToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	accountID := uuid.New()

	token, expiresAt, err := jwtService.GenerateResetToken(accountID, entity.RoleCompany)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Reset tokens live for one hour.
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, entity.RoleCompany, claims.Role)
	assert.Equal(t, service.TokenTypeReset, claims.Type)
}

func TestJWTService_SessionTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	assert.Equal(t, 31*24*time.Hour, jwtService.SessionTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	assert.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "another_session_secret_entirely_different"
	otherCfg.SecretKey.Reset = "another_reset_secret_entirely_different"
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateSessionToken(uuid.New(), entity.RoleUser)
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}
