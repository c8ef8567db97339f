package models

import "time"

// RevokedToken is a denylist entry for a logged-out token, keyed by the JWT
// jti claim. Entries are kept until the token would have expired anyway.
type RevokedToken struct {
	JTI       string    `json:"jti" gorm:"primaryKey;type:varchar(36)"`
	ExpiresAt time.Time `json:"expires_at"`
}
