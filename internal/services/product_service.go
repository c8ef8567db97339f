package services

import (
	"errors"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ErrCategoryNotFound is returned when a product write references a category
// that does not exist.
var ErrCategoryNotFound = errors.New("category does not exist")

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched.
type ProductUpdate struct {
	Name          *string
	Description   *string
	Price         *float64
	StockQuantity *int
	CategoryID    *uint
	Status        *string
}

// ProductService handles business logic related to products. Every write
// checks that the referenced category exists before touching the store, and
// publishes a catalog event when a broker is configured.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	events       *rabbitmq.Client
}

// NewProductService creates a new ProductService. A nil events client
// disables event publishing.
func NewProductService(repo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, events *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		events:       events,
	}
}

// GetAllProducts retrieves products, optionally filtered to one category.
func (s *ProductService) GetAllProducts(categoryID *uint) ([]models.Product, error) {
	return s.repo.GetAll(categoryID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product after verifying its category exists.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.ensureCategoryExists(product.CategoryID); err != nil {
		return err
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("created", product)
	return nil
}

// UpdateProduct applies a partial update to an existing product. Only non-nil
// fields change; omitted fields keep their prior values. Returns the updated
// product with its category attached.
func (s *ProductService) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.CategoryID != nil && *update.CategoryID != product.CategoryID {
		if err := s.ensureCategoryExists(*update.CategoryID); err != nil {
			return nil, err
		}
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.StockQuantity != nil {
		product.StockQuantity = *update.StockQuantity
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	if update.Status != nil {
		product.Status = *update.Status
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	// Re-read so the attached category reflects a changed category_id.
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.publish("updated", updated)
	return updated, nil
}

// DeleteProduct deletes a product by its ID. Hard delete.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("deleted", product)
	return nil
}

func (s *ProductService) ensureCategoryExists(categoryID uint) error {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// publish sends a catalog event. Failures are logged, never surfaced: the
// write already succeeded.
func (s *ProductService) publish(action string, product *models.Product) {
	if s.events == nil {
		return
	}
	event := rabbitmq.Event{Action: action, Entity: "product", ID: product.ID, Name: product.Name}
	if err := s.events.PublishCatalogEvent(event); err != nil {
		log.Printf("Failed to publish product %s event: %v", action, err)
	}
}
