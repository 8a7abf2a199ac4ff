package repositories

import (
	"tienda/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetByID(id string) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	GetByTitle(title string) (*models.Product, error)
	Create(product *models.Product) error
	Delete(id string) error
	Query(filter models.ProductFilter, sort string, skip, limit int) ([]models.Product, error)
	Count(filter models.ProductFilter) (int64, error)
	DistinctCategories() ([]string, error)
}
