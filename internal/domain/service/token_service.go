package service

import (
	"time"

	"gamestore/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeSession = "session"
	TokenTypeReset   = "reset"
)

// Claims defines the custom claims carried by storefront tokens. The account
// ID travels in the registered "sub" claim and is copied into AccountID after
// validation.
type Claims struct {
	AccountID uuid.UUID   `json:"-"`
	Role      entity.Role `json:"role"`
	Type      string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a long-lived bearer token carrying the
	// account id and role.
	GenerateSessionToken(accountID uuid.UUID, role entity.Role) (string, error)

	// GenerateResetToken creates a short-lived password-reset token and
	// returns its expiry so it can be persisted alongside the account.
	GenerateResetToken(accountID uuid.UUID, role entity.Role) (token string, expiresAt time.Time, err error)

	// ValidateToken checks a token's signature and expiry and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// SessionTokenDuration returns the configured session token lifetime.
	SessionTokenDuration() time.Duration
}
