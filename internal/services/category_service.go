package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// CategoryService handles business logic related to categories. Categories
// are append-only: the API exposes no update or delete.
type CategoryService struct {
	repo   repositories.CategoryRepository
	events *rabbitmq.Client
}

// NewCategoryService creates a new CategoryService. A nil events client
// disables event publishing.
func NewCategoryService(repo repositories.CategoryRepository, events *rabbitmq.Client) *CategoryService {
	return &CategoryService{
		repo:   repo,
		events: events,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	if err := s.repo.Create(category); err != nil {
		return err
	}
	if s.events != nil {
		event := rabbitmq.Event{Action: "created", Entity: "category", ID: category.ID, Name: category.Name}
		if err := s.events.PublishCatalogEvent(event); err != nil {
			log.Printf("Failed to publish category created event: %v", err)
		}
	}
	return nil
}
