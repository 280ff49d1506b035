package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gamestore/config"
	"gamestore/internal/domain/entity"
	"gamestore/internal/domain/service"
)

const (
	sessionTokenTTL = 31 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret string // Secret key for signing session tokens.
	resetSecret   string // Secret key for signing password-reset tokens.
	sessionTTL    time.Duration
	resetTTL      time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		resetSecret:   cfg.SecretKey.Reset,
		sessionTTL:    sessionTokenTTL,
		resetTTL:      resetTokenTTL,
	}, nil
}

// GenerateSessionToken creates a signed bearer token for an authenticated account.
func (s *jwtService) GenerateSessionToken(accountID uuid.UUID, role entity.Role) (string, error) {
	token, _, err := s.generateToken(accountID, role, service.TokenTypeSession, s.sessionTTL, s.sessionSecret)

	return token, err
}

// GenerateResetToken creates a short-lived password-reset token and returns
// its expiry for persistence alongside the account.
func (s *jwtService) GenerateResetToken(accountID uuid.UUID, role entity.Role) (string, time.Time, error) {
	return s.generateToken(accountID, role, service.TokenTypeReset, s.resetTTL, s.resetSecret)
}

// ValidateToken checks a token's signature and expiry and returns its claims.
// The signing secret is selected by the token's "type" claim.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		switch claims.Type {
		case service.TokenTypeSession:
			return []byte(s.sessionSecret), nil
		case service.TokenTypeReset:
			return []byte(s.resetSecret), nil
		default:
			return nil, errors.Errorf("unknown token type: %q", claims.Type)
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "token validation failed")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "token subject is not a valid account id")
	}
	claims.AccountID = accountID

	return claims, nil
}

// SessionTokenDuration returns the configured duration for session tokens.
func (s *jwtService) SessionTokenDuration() time.Duration {
	return s.sessionTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(accountID uuid.UUID, role entity.Role, tokenType string, ttl time.Duration, secret string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &service.Claims{
		Role: role,
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}
