package auth

import (
	"testing"

	"gamestore/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_OutOfRangeCostFallsBackToDefault(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("StrongPass123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
