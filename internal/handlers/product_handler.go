package handlers

import (
	"context"
	"net/http"
	"strconv"

	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// RegisterRoutes registers the routes for the product catalog. Catalog reads
// are public, no auth middleware is attached.
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	products := router.Group("/products")
	{
		products.GET("", h.GetProducts)
		products.GET("/featured", h.GetFeaturedProducts)
		products.GET("/categories", h.GetCategories)
		products.GET("/category/:slug", h.GetProductsByCategory)
		products.GET("/search", h.SearchProducts)
		products.GET("/:product_id", h.GetProduct)
	}
}

// GetProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} services.ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, limit := paginationParams(c)

	ctx := context.Background()
	products, err := h.productService.GetProducts(ctx, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts godoc
// @Summary List featured products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products/featured [get]
func (h *ProductHandler) GetFeaturedProducts(c *gin.Context) {
	ctx := context.Background()
	products, err := h.productService.GetFeaturedProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get featured products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetCategories godoc
// @Summary List product categories
// @Tags products
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} ErrorResponse
// @Router /products/categories [get]
func (h *ProductHandler) GetCategories(c *gin.Context) {
	ctx := context.Background()
	categories, err := h.productService.GetCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get categories",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetProductsByCategory godoc
// @Summary List products in a category
// @Tags products
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} services.ProductListResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/category/{slug} [get]
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	page, limit := paginationParams(c)

	ctx := context.Background()
	products, err := h.productService.GetProductsByCategory(ctx, c.Param("slug"), page, limit)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Category not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// SearchProducts godoc
// @Summary Search products by name
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} services.ProductListResponse
// @Failure 400 {object} ErrorResponse
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: "Search query is required",
		})
		return
	}

	page, limit := paginationParams(c)

	ctx := context.Background()
	products, err := h.productService.SearchProducts(ctx, query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to search products",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param product_id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{product_id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx := context.Background()
	product, err := h.productService.GetProductByID(ctx, c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Product not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
