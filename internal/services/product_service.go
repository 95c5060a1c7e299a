package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"
	"golang-storefront-backend/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService serves catalog browsing with Redis read caching.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	cache        *cache.RedisCache
}

func NewProductService(
	productRepo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	cache *cache.RedisCache,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
	}
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Page     int              `json:"page"`
}

func (s *ProductService) GetProducts(ctx context.Context, page, limit int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	// Try cache first
	cacheKey := fmt.Sprintf("products:%d:%d", page, limit)
	var cachedResponse ProductListResponse
	if err := s.cache.Get(ctx, cacheKey, &cachedResponse); err == nil {
		return &cachedResponse, nil
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	response := &ProductListResponse{Products: products, Page: page}
	s.cache.Set(ctx, cacheKey, response, time.Minute*15)

	return response, nil
}

func (s *ProductService) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	cacheKey := "products:featured"
	var cachedProducts []models.Product
	if err := s.cache.Get(ctx, cacheKey, &cachedProducts); err == nil {
		return cachedProducts, nil
	}

	products, err := s.productRepo.GetFeatured(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, products, time.Minute*15)
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*models.Product, error) {
	id, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	cacheKey := "product:" + productID
	var cachedProduct models.Product
	if err := s.cache.Get(ctx, cacheKey, &cachedProduct); err == nil {
		return &cachedProduct, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	s.cache.Set(ctx, cacheKey, product, time.Minute*30)
	return product, nil
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, slug string, page, limit int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	products, err := s.productRepo.GetByCategorySlug(ctx, slug, limit, offset)
	if err != nil {
		return nil, errors.New("category not found")
	}

	return &ProductListResponse{Products: products, Page: page}, nil
}

func (s *ProductService) SearchProducts(ctx context.Context, query string, page, limit int) (*ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	products, err := s.productRepo.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ProductListResponse{Products: products, Page: page}, nil
}

func (s *ProductService) GetCategories(ctx context.Context) ([]models.Category, error) {
	cacheKey := "categories"
	var cachedCategories []models.Category
	if err := s.cache.Get(ctx, cacheKey, &cachedCategories); err == nil {
		return cachedCategories, nil
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, categories, time.Minute*30)
	return categories, nil
}
