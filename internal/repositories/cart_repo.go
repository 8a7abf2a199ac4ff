package repositories

import (
	"tienda/internal/models"
)

// CartRepository defines the interface for cart data access.
// Save is a full overwrite of the cart's line-item sequence.
type CartRepository interface {
	GetByID(id string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
}
