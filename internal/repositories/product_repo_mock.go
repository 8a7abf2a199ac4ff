package repositories

import (
	"sort"
	"strings"
	"sync"

	"tienda/internal/apperrors"
	"tienda/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, apperrors.NewNotFound("product", id)
	}
	return &product, nil
}

// GetByCode returns a product by its code (exact match).
func (r *MockProductRepository) GetByCode(code string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.products[id]; p.Code == code {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFound("product", code)
}

// GetByTitle returns a product by its title (exact match).
func (r *MockProductRepository) GetByTitle(title string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if p := r.products[id]; p.Title == title {
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFound("product", title)
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.products[product.ID]; !ok {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return apperrors.NewNotFound("product", id)
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Query returns products matching the filter, sorted and windowed.
func (r *MockProductRepository) Query(filter models.ProductFilter, sortDir string, skip, limit int) ([]models.Product, error) {
	matched := r.matching(filter)

	if sortDir == "asc" {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	} else if sortDir != "" {
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	}

	if skip >= len(matched) {
		return []models.Product{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count returns the number of products matching the filter.
func (r *MockProductRepository) Count(filter models.ProductFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

// DistinctCategories returns the distinct category values.
func (r *MockProductRepository) DistinctCategories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, id := range r.order {
		p := r.products[id]
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (r *MockProductRepository) matching(filter models.ProductFilter) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, id := range r.order {
		p := r.products[id]
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Stock == "disponible" && p.Stock <= 0 {
			continue
		}
		if filter.Stock == "agotado" && p.Stock != 0 {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}
