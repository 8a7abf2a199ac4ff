package models

import "time"

// CartItem is a single line in a cart: a reference to a product plus a
// quantity. A cart holds at most one line per product id; repeated adds
// merge into the existing line instead of appending.
type CartItem struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	CartID    string `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string `json:"product" gorm:"type:varchar(36)"`
	Quantity  int    `json:"quantity"`
	// Position preserves insertion order across full-overwrite saves.
	Position int `json:"-"`
}

// Cart is an ordered sequence of line items. The cart owns its items;
// each item references a product by id only, never an embedded copy.
// Timestamps are kept out of the JSON envelope.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Items     []CartItem `json:"products" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}

// FindItem returns a pointer into Items for the given product id, or nil.
func (c *Cart) FindItem(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// ResolvedCartItem is a line item with its product dereferenced against the
// catalog. Unresolved marks a line whose product has since been deleted;
// the line is kept rather than failing the whole read.
type ResolvedCartItem struct {
	ProductID  string   `json:"productId"`
	Quantity   int      `json:"quantity"`
	Product    *Product `json:"product,omitempty"`
	Unresolved bool     `json:"unresolved,omitempty"`
}

// CartView is the materialized form of a cart returned to clients.
type CartView struct {
	ID       string             `json:"id"`
	Products []ResolvedCartItem `json:"products"`
}
