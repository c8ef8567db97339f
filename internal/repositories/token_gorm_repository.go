package repositories

import (
	"fmt"
	"time"

	"catalog/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMTokenRepository is a GORM implementation of TokenRepository.
type GORMTokenRepository struct {
	db *gorm.DB
}

// NewGORMTokenRepository creates a new instance of GORMTokenRepository.
func NewGORMTokenRepository(db *gorm.DB) *GORMTokenRepository {
	return &GORMTokenRepository{
		db: db,
	}
}

// Revoke adds a token's jti to the denylist. Revoking the same token twice is
// not an error.
func (r *GORMTokenRepository) Revoke(jti string, expiresAt time.Time) error {
	entry := models.RevokedToken{JTI: jti, ExpiresAt: expiresAt}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a jti is on the denylist.
func (r *GORMTokenRepository) IsRevoked(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return count > 0, nil
}

// PurgeExpired drops denylist entries for tokens that have expired on their
// own; they can no longer authenticate either way.
func (r *GORMTokenRepository) PurgeExpired(now time.Time) error {
	if err := r.db.Where("expires_at < ?", now).Delete(&models.RevokedToken{}).Error; err != nil {
		return fmt.Errorf("failed to purge expired tokens: %w", err)
	}
	return nil
}
