package services

import (
	"fmt"

	"tienda/internal/apperrors"
	"tienda/internal/models"
	"tienda/internal/repositories"
)

// CartService handles business logic related to carts, cross-checking every
// mutation against the product catalog. A cart holds at most one line item
// per product id; adds merge by summing quantity, never by appending.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	sink        NotificationSink
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, sink NotificationSink) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sink:        sink,
	}
}

// CreateCart creates a new empty cart and emits a newCart event.
func (s *CartService) CreateCart() (*models.Cart, error) {
	cart := &models.Cart{Items: []models.CartItem{}}
	if err := s.cartRepo.Create(cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	emit(s.sink, "newCart", cart)
	return cart, nil
}

// AddProduct adds a single unit of a product to a cart. If a line item for
// the product already exists its quantity is incremented by exactly 1,
// otherwise a new line with quantity 1 is appended. The product must exist
// in the catalog; on a miss the cart is left unchanged.
//
// The productAdded event always reports quantity 1, not the line's
// resulting quantity. That matches the long-observed wire behavior and
// consumers depend on it; see DESIGN.md.
func (s *CartService) AddProduct(cartID, productID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}

	if item := cart.FindItem(productID); item != nil {
		item.Quantity++
	} else {
		cart.Items = append(cart.Items, models.CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}

	emit(s.sink, "productAdded", map[string]interface{}{
		"cartId": cart.ID,
		"product": map[string]interface{}{
			"id":       productID,
			"quantity": 1,
		},
	})
	return cart, nil
}

// RemoveProduct removes the line item for the given product id. Removing an
// absent product id is not an error; the cart is returned unchanged.
func (s *CartService) RemoveProduct(cartID, productID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of an existing line item. It fails with
// a NotFoundError if the cart has no line for the product, and rejects
// zero or negative quantities. Removal is a distinct operation.
func (s *CartService) UpdateQuantity(cartID, productID string, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidation("quantity", "must be a positive integer")
	}

	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	item := cart.FindItem(productID)
	if item == nil {
		return nil, apperrors.NewNotFound("cart item", productID)
	}
	item.Quantity = quantity

	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ReplaceItems substitutes the cart's entire line-item sequence. Every
// incoming item is checked in order: the product id must be present, the
// product must exist in the catalog, the quantity must be positive, and no
// product id may repeat. The first failure aborts the whole operation and
// the stored cart keeps its prior state.
func (s *CartService) ReplaceItems(cartID string, items []models.CartItem) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	validated := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			return nil, apperrors.NewValidation("product", "product id is required")
		}
		if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
			return nil, err
		}
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidation("quantity",
				fmt.Sprintf("must be a positive integer for product %s", item.ProductID))
		}
		if seen[item.ProductID] {
			return nil, apperrors.NewDuplicate("product", item.ProductID)
		}
		seen[item.ProductID] = true
		validated = append(validated, models.CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cart.Items = validated
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ClearCart unconditionally empties the cart's line-item sequence.
func (s *CartService) ClearCart(cartID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	cart.Items = []models.CartItem{}
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// GetCart materializes a cart for reading: each line item's product is
// resolved against the catalog and embedded. A line whose product has been
// deleted since it was added is kept and marked unresolved instead of
// failing the read.
func (s *CartService) GetCart(cartID string) (*models.CartView, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}

	view := &models.CartView{
		ID:       cart.ID,
		Products: make([]models.ResolvedCartItem, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		resolved := models.ResolvedCartItem{ProductID: item.ProductID, Quantity: item.Quantity}
		product, err := s.productRepo.GetByID(item.ProductID)
		switch {
		case err == nil:
			resolved.Product = product
		case apperrors.IsNotFound(err):
			resolved.Unresolved = true
		default:
			return nil, err
		}
		view.Products = append(view.Products, resolved)
	}
	return view, nil
}
