package handlers

import (
	"context"
	"net/http"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService CheckoutServiceInterface
}

func NewCheckoutHandler(checkoutService CheckoutServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// RegisterRoutes registers the routes for checkout
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	checkout := router.Group("/checkout", authMiddleware.AuthRequired())
	{
		// Order summary for the cart, or for a buy-now item passed via query params
		checkout.GET("/summary", h.GetSummary)
	}

	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		// Submit an order
		orders.POST("", h.PlaceOrder)
	}
}

// GetSummary godoc
// @Summary Get checkout order summary
// @Description Compute subtotal, shipping, tax and grand total for the cart, or for a single buy-now item when name/price/quantity query params are present
// @Tags checkout
// @Produce json
// @Param name query string false "Buy-now item name"
// @Param price query number false "Buy-now line price (already multiplied by quantity)"
// @Param quantity query int false "Buy-now quantity"
// @Param image query string false "Buy-now image"
// @Param id query string false "Buy-now product ID"
// @Success 200 {object} services.OrderSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /checkout/summary [get]
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	// Buy-now shortcut: name, price and quantity arrive as query params and
	// bypass the cart entirely.
	if c.Query("name") != "" && c.Query("price") != "" && c.Query("quantity") != "" {
		var item services.SingleItem
		if err := c.ShouldBindQuery(&item); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Invalid buy-now parameters",
				Message: err.Error(),
			})
			return
		}

		summary, err := h.checkoutService.SingleItemSummary(&item)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Failed to compute summary",
				Message: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, summary)
		return
	}

	ctx := context.Background()
	summary, err := h.checkoutService.CartSummary(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute summary",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// PlaceOrder godoc
// @Summary Submit an order
// @Description Place an order from the cart, or from explicit buy-now items. The cart is cleared only after a confirmed cart-sourced order.
// @Tags checkout
// @Accept json
// @Produce json
// @Param order body services.PlaceOrderRequest true "Order data"
// @Success 201 {object} services.PlaceOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /orders [post]
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req services.PlaceOrderRequest
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
	response, err := h.checkoutService.PlaceOrder(ctx, userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to place order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}
