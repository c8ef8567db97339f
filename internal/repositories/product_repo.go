package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access. A nil
// categoryID on GetAll means "all products"; reads attach the category.
type ProductRepository interface {
	GetAll(categoryID *uint) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
