package repositories

import (
	"sync"

	"tienda/internal/apperrors"
	"tienda/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Carts are stored by value so callers never share item slices with the
// repository, mirroring the isolation a real store provides.
type MockCartRepository struct {
	carts map[string]models.Cart
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// GetByID returns a copy of the cart with the given ID.
func (r *MockCartRepository) GetByID(id string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, apperrors.NewNotFound("cart", id)
	}
	copied := cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.ID] = stored
	return nil
}

// Save overwrites the stored cart's line-item sequence.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.ID]; !ok {
		return apperrors.NewNotFound("cart", cart.ID)
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	for i := range stored.Items {
		stored.Items[i].CartID = cart.ID
		stored.Items[i].Position = i
	}
	r.carts[cart.ID] = stored
	return nil
}
