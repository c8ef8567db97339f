package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the interface for category data access. The API
// never updates or deletes categories, so neither does the repository.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Create(category *models.Category) error
}
