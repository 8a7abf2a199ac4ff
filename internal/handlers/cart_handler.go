package handlers

import (
	"log"

	"tienda/internal/models"
	"tienda/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for carts.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/carts")
	cartRoutes.Post("/", h.HandleCreateCart)
	cartRoutes.Get("/:cid", h.HandleGetCart)
	cartRoutes.Post("/:cid/product/:pid", h.HandleAddProduct)
	cartRoutes.Delete("/:cid/products/:pid", h.HandleRemoveProduct)
	cartRoutes.Put("/:cid/products/:pid", h.HandleUpdateQuantity)
	cartRoutes.Put("/:cid", h.HandleReplaceItems)
	cartRoutes.Delete("/:cid", h.HandleClearCart)
}

// HandleCreateCart creates a new empty cart.
func (h *CartHandler) HandleCreateCart(c *fiber.Ctx) error {
	cart, err := h.service.CreateCart()
	if err != nil {
		log.Printf("Error creating cart: %v", err)
		return respondError(c, err, "Could not create cart")
	}
	return c.Status(fiber.StatusCreated).JSON(cart)
}

// HandleGetCart returns the cart's line items with their products resolved.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cartID := c.Params("cid")
	view, err := h.service.GetCart(cartID)
	if err != nil {
		log.Printf("Error getting cart %s: %v", cartID, err)
		return respondError(c, err, "Could not retrieve cart")
	}
	return c.JSON(view.Products)
}

// HandleAddProduct adds a single unit of a product to the cart, merging
// into an existing line item when present.
func (h *CartHandler) HandleAddProduct(c *fiber.Ctx) error {
	cartID := c.Params("cid")
	productID := c.Params("pid")
	cart, err := h.service.AddProduct(cartID, productID)
	if err != nil {
		log.Printf("Error adding product %s to cart %s: %v", productID, cartID, err)
		return respondError(c, err, "Could not add product to cart")
	}
	return c.JSON(cart)
}

// HandleRemoveProduct removes the line item for a product id; removing an
// absent product is a no-op.
func (h *CartHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	cartID := c.Params("cid")
	productID := c.Params("pid")
	cart, err := h.service.RemoveProduct(cartID, productID)
	if err != nil {
		log.Printf("Error removing product %s from cart %s: %v", productID, cartID, err)
		return respondError(c, err, "Could not remove product from cart")
	}
	return c.JSON(fiber.Map{
		"message": "Product removed from cart",
		"cart":    cart,
	})
}

// HandleUpdateQuantity sets the quantity of an existing line item.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	cartID := c.Params("cid")
	productID := c.Params("pid")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing quantity update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart, err := h.service.UpdateQuantity(cartID, productID, body.Quantity)
	if err != nil {
		log.Printf("Error updating quantity for product %s in cart %s: %v", productID, cartID, err)
		return respondError(c, err, "Could not update quantity")
	}
	return c.JSON(fiber.Map{
		"message": "Quantity updated",
		"cart":    cart,
	})
}

// HandleReplaceItems substitutes the cart's entire line-item sequence.
// Body: {"products": [{"product": "<id>", "quantity": n}, ...]}.
func (h *CartHandler) HandleReplaceItems(c *fiber.Ctx) error {
	cartID := c.Params("cid")

	var body struct {
		Products []models.CartItem `json:"products"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing cart replace body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if body.Products == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   "products must be an array",
		})
	}

	cart, err := h.service.ReplaceItems(cartID, body.Products)
	if err != nil {
		log.Printf("Error replacing items in cart %s: %v", cartID, err)
		return respondError(c, err, "Could not update cart")
	}
	return c.JSON(fiber.Map{
		"message": "Cart updated",
		"cart":    cart,
	})
}

// HandleClearCart empties the cart's line-item sequence.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	cartID := c.Params("cid")
	cart, err := h.service.ClearCart(cartID)
	if err != nil {
		log.Printf("Error clearing cart %s: %v", cartID, err)
		return respondError(c, err, "Could not clear cart")
	}
	return c.JSON(fiber.Map{
		"message": "All products removed from cart",
		"cart":    cart,
	})
}
