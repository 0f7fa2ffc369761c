package service

import (
	"boutique/internal/domain/entity"
)

// TokenService validates bearer tokens issued by the external auth system.
// Token issuance, refresh, and revocation all live behind that boundary; this
// service only answers "is this credential currently valid, and for whom".
type TokenService interface {
	// ValidateToken checks signature and expiry of an access token and
	// returns the credential it carries. An invalid or expired token errors.
	ValidateToken(tokenString string) (entity.Credential, error)
}
