package repositories

import "time"

// TokenRepository defines the interface for the revoked-token denylist.
type TokenRepository interface {
	Revoke(jti string, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
	PurgeExpired(now time.Time) error
}
