package repositories

import (
	"context"
	"log"

	"tienda/internal/models"
	"tienda/pkg/cache"
)

// CachedProductRepository decorates a ProductRepository with a Redis
// read-through cache on single-product lookups. Listing queries always hit
// the underlying store; writes invalidate the cached entry. Cache failures
// are logged and the underlying store answers instead.
type CachedProductRepository struct {
	inner ProductRepository
	cache *cache.Cache
}

// NewCachedProductRepository creates a new instance of CachedProductRepository.
func NewCachedProductRepository(inner ProductRepository, c *cache.Cache) *CachedProductRepository {
	return &CachedProductRepository{
		inner: inner,
		cache: c,
	}
}

// GetByID returns a product by its ID, consulting the cache first.
func (r *CachedProductRepository) GetByID(id string) (*models.Product, error) {
	ctx := context.Background()

	var cached models.Product
	hit, err := r.cache.Get(ctx, "product:"+id, &cached)
	if err != nil {
		log.Printf("Warning: cache lookup failed for product %s: %v", id, err)
	} else if hit {
		return &cached, nil
	}

	product, err := r.inner.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, "product:"+id, product); err != nil {
		log.Printf("Warning: cache fill failed for product %s: %v", id, err)
	}
	return product, nil
}

// GetByCode returns a product by its code (uncached).
func (r *CachedProductRepository) GetByCode(code string) (*models.Product, error) {
	return r.inner.GetByCode(code)
}

// GetByTitle returns a product by its title (uncached).
func (r *CachedProductRepository) GetByTitle(title string) (*models.Product, error) {
	return r.inner.GetByTitle(title)
}

// Create adds a new product and primes its cache entry.
func (r *CachedProductRepository) Create(product *models.Product) error {
	if err := r.inner.Create(product); err != nil {
		return err
	}
	if err := r.cache.Set(context.Background(), "product:"+product.ID, product); err != nil {
		log.Printf("Warning: cache fill failed for product %s: %v", product.ID, err)
	}
	return nil
}

// Delete removes a product and invalidates its cache entry.
func (r *CachedProductRepository) Delete(id string) error {
	if err := r.inner.Delete(id); err != nil {
		return err
	}
	if err := r.cache.Delete(context.Background(), "product:"+id); err != nil {
		log.Printf("Warning: cache invalidation failed for product %s: %v", id, err)
	}
	return nil
}

// Query passes through to the underlying store.
func (r *CachedProductRepository) Query(filter models.ProductFilter, sort string, skip, limit int) ([]models.Product, error) {
	return r.inner.Query(filter, sort, skip, limit)
}

// Count passes through to the underlying store.
func (r *CachedProductRepository) Count(filter models.ProductFilter) (int64, error) {
	return r.inner.Count(filter)
}

// DistinctCategories passes through to the underlying store.
func (r *CachedProductRepository) DistinctCategories() ([]string, error) {
	return r.inner.DistinctCategories()
}
