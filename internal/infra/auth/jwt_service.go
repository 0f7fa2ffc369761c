// Package auth provides concrete implementations for authentication-related
// domain services. Token issuance lives in the external auth system; this
// package only validates what arrives on a request.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/service"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry, or
// claim checks.
var ErrInvalidToken = errors.New("invalid or expired token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string // Secret key shared with the token issuer.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// ValidateToken checks the validity of a token string and extracts the
// credential it represents.
func (s *jwtService) ValidateToken(tokenString string) (entity.Credential, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil || !token.Valid {
		return entity.Credential{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Credential{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return entity.Credential{}, ErrInvalidToken
	}

	return entity.Credential{
		Token:  tokenString,
		UserID: sub,
	}, nil
}
