package handlers

import (
	"context"
	"net/http"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AddressHandler struct {
	addressService *services.AddressService
}

func NewAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// RegisterRoutes registers the routes for address management. Addresses live
// under /auth to match the profile-owned shape the storefront consumes.
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	addresses := router.Group("/auth/addresses", authMiddleware.AuthRequired())
	{
		addresses.GET("", h.GetAddresses)
		addresses.POST("", h.CreateAddress)
		addresses.PUT("/:address_id", h.UpdateAddress)
		addresses.DELETE("/:address_id", h.DeleteAddress)
		addresses.POST("/:address_id/default", h.SetDefaultAddress)
	}
}

// GetAddresses godoc
// @Summary Get user's addresses
// @Tags addresses
// @Produce json
// @Success 200 {array} models.Address
// @Failure 401 {object} ErrorResponse
// @Router /auth/addresses [get]
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	addresses, err := h.addressService.GetAddresses(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get addresses",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, addresses)
}

// CreateAddress godoc
// @Summary Add a new address
// @Tags addresses
// @Accept json
// @Produce json
// @Param address body services.CreateAddressRequest true "Address data"
// @Success 201 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/addresses [post]
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	var req services.CreateAddressRequest
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
	address, err := h.addressService.CreateAddress(ctx, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create address",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, address)
}

// UpdateAddress godoc
// @Summary Update an address
// @Tags addresses
// @Accept json
// @Produce json
// @Param address_id path string true "Address ID"
// @Param address body services.UpdateAddressRequest true "Address data"
// @Success 200 {object} models.Address
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/addresses/{address_id} [put]
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	var req services.UpdateAddressRequest
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
	address, err := h.addressService.UpdateAddress(ctx, userID, c.Param("address_id"), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update address",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, address)
}

// DeleteAddress godoc
// @Summary Delete an address
// @Tags addresses
// @Produce json
// @Param address_id path string true "Address ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /auth/addresses/{address_id} [delete]
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	if err := h.addressService.DeleteAddress(ctx, userID, c.Param("address_id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to delete address",
			Message: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetDefaultAddress godoc
// @Summary Mark an address as default
// @Tags addresses
// @Produce json
// @Param address_id path string true "Address ID"
// @Success 200 {object} models.Address
// @Failure 401 {object} ErrorResponse
// @Router /auth/addresses/{address_id}/default [post]
func (h *AddressHandler) SetDefaultAddress(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	address, err := h.addressService.SetDefaultAddress(ctx, userID, c.Param("address_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to set default address",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, address)
}
