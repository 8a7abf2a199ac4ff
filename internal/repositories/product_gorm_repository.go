package repositories

import (
	"errors"
	"fmt"
	"strings"

	"tienda/internal/apperrors"
	"tienda/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetByCode retrieves a single product by its code (exact match).
func (r *GORMProductRepository) GetByCode(code string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", code)
		}
		return nil, fmt.Errorf("failed to get product by code %s: %w", code, err)
	}
	return &product, nil
}

// GetByTitle retrieves a single product by its title (exact match).
func (r *GORMProductRepository) GetByTitle(title string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("product", title)
		}
		return nil, fmt.Errorf("failed to get product by title %s: %w", title, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("product", id)
	}
	return nil
}

// Query retrieves products matching the filter, sorted and windowed.
// Sort "asc" orders by price ascending; any other non-empty value descending.
func (r *GORMProductRepository) Query(filter models.ProductFilter, sort string, skip, limit int) ([]models.Product, error) {
	tx := applyProductFilter(r.db.Model(&models.Product{}), filter)
	if sort == "asc" {
		tx = tx.Order("price ASC")
	} else if sort != "" {
		tx = tx.Order("price DESC")
	}

	var products []models.Product
	if err := tx.Offset(skip).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching the filter.
func (r *GORMProductRepository) Count(filter models.ProductFilter) (int64, error) {
	var count int64
	tx := applyProductFilter(r.db.Model(&models.Product{}), filter)
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// DistinctCategories returns the distinct category values in the catalog.
func (r *GORMProductRepository) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Product{}).Distinct().Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func applyProductFilter(tx *gorm.DB, filter models.ProductFilter) *gorm.DB {
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Title != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Title)+"%")
	}
	switch filter.Stock {
	case "disponible":
		tx = tx.Where("stock > 0")
	case "agotado":
		tx = tx.Where("stock = 0")
	}
	return tx
}
