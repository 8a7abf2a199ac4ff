package models

import "time"

// Product represents a product in the catalog.
// Code and Title are unique across the catalog (enforced by the service,
// exact case-sensitive match). Deletes are hard deletes so a removed
// product's code and title become reusable; carts holding a reference to a
// deleted product keep the stale line (see CartService.GetCart).
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=10"`
	Description string    `json:"description" validate:"required,min=10"`
	Code        string    `json:"code" gorm:"uniqueIndex;type:varchar(100)" validate:"required"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Status      bool      `json:"status"`
	Stock       int       `json:"stock" validate:"gte=0"`
	Category    string    `json:"category" validate:"required"`
	Thumbnails  []string  `json:"thumbnails" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
