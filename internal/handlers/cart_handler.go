package handlers

import (
	"context"
	"net/http"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// All cart routes require authentication
	cart := router.Group("/cart", authMiddleware.AuthRequired())
	{
		// Get the user's cart
		cart.GET("", h.GetCart)
		// Add item to cart (merge-add on duplicates)
		cart.POST("/items", h.AddItem)
		// Update cart item quantity
		cart.PUT("/items/:product_id", h.UpdateQuantity)
		// Remove item from cart
		cart.DELETE("/items/:product_id", h.RemoveItem)
		// Clear cart
		cart.DELETE("", h.ClearCart)
	}
}

// GetCart godoc
// @Summary Get user's cart
// @Description Get the current user's cart with derived totals
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	cart, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a product to the cart; quantities merge when the product is already present
// @Tags cart
// @Accept json
// @Produce json
// @Param item body services.AddToCartRequest true "Cart item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	cart, err := h.cartService.AddItem(ctx, userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to add item to cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// UpdateQuantity godoc
// @Summary Update cart item quantity
// @Description Replace the quantity of a cart line; zero removes the line
// @Tags cart
// @Accept json
// @Produce json
// @Param product_id path string true "Product ID"
// @Param item body services.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{product_id} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID := c.Param("product_id")

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	cart, err := h.cartService.UpdateQuantity(ctx, userID, productID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update cart item",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Tags cart
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("product_id")

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	cart, err := h.cartService.RemoveItem(ctx, userID, productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to remove item from cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Clear user's cart
// @Tags cart
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	if err := h.cartService.Clear(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to clear cart",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
