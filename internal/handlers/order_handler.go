package handlers

import (
	"context"
	"net/http"
	"strconv"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the routes for order history
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		// List the user's orders, newest first
		orders.GET("", h.GetUserOrders)
		// Full order detail for the confirmation page
		orders.GET("/:order_id", h.GetOrderByID)
	}

	admin := router.Group("/admin/orders", authMiddleware.AuthRequired(), authMiddleware.AdminRequired())
	{
		admin.GET("/status/:status", h.GetOrdersByStatus)
		admin.PUT("/:order_id/status", h.UpdateOrderStatus)
	}
}

// GetUserOrders godoc
// @Summary Get user's order history
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} services.OrderListResponse
// @Failure 401 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	ctx := context.Background()
	orders, err := h.orderService.GetUserOrders(ctx, userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get orders",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order detail
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} services.OrderDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	orderID := c.Param("order_id")

	ctx := context.Background()
	order, err := h.orderService.GetOrderByID(ctx, userID, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Failed to get order",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled refunded"`
}

// GetOrdersByStatus godoc
// @Summary List orders by status
// @Description Admin view of the fulfillment queue for one order state
// @Tags orders
// @Produce json
// @Param status path string true "Order status"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders/status/{status} [get]
func (h *OrderHandler) GetOrdersByStatus(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	ctx := context.Background()
	orders, err := h.orderService.GetOrdersByStatus(ctx, c.Param("status"), page, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to get orders",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Admin transition of an order to a new state
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param status body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/orders/{order_id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	ctx := context.Background()
	order, err := h.orderService.UpdateOrderStatus(ctx, c.Param("order_id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to update order status",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}
