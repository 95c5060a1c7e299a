package handlers

import (
	"context"
	"net/http"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// RegisterRoutes registers the routes for favorites
func (h *FavoriteHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	favorites := router.Group("/favorites", authMiddleware.AuthRequired())
	{
		// List liked products
		favorites.GET("", h.GetFavorites)
		// Toggle liked state for a product
		favorites.POST("/toggle", h.Toggle)
	}
}

// GetFavorites godoc
// @Summary Get liked products
// @Tags favorites
// @Produce json
// @Success 200 {object} services.FavoritesResponse
// @Failure 401 {object} ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) GetFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	ctx := context.Background()
	favorites, err := h.favoriteService.GetFavorites(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get favorites",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// Toggle godoc
// @Summary Toggle a liked product
// @Description Likes the product when not yet liked, removes it otherwise
// @Tags favorites
// @Accept json
// @Produce json
// @Param product body services.ToggleFavoriteRequest true "Product data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	var req services.ToggleFavoriteRequest
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
	liked, favorites, err := h.favoriteService.Toggle(ctx, userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to toggle favorite",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":     liked,
		"favorites": favorites,
	})
}
