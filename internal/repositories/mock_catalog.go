package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang-storefront-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock catalog used when MongoDB is unavailable. Mirrors the shapes the live
// catalog serves so the rest of the service cannot tell the difference.

var ErrNotFound = errors.New("not found")

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

var mockCategories = []models.Category{
	{ID: mustObjectID("650000000000000000000001"), Name: "Food Products", Slug: "food", Description: "Fresh and packaged food items", Image: "/images/category-food.png", IsActive: true},
	{ID: mustObjectID("650000000000000000000002"), Name: "Bakery Items", Slug: "bakery", Description: "Fresh baked goods", Image: "/images/category-bakery.png", IsActive: true},
	{ID: mustObjectID("650000000000000000000003"), Name: "Spices", Slug: "spices", Description: "Organic spices and seasonings", Image: "/images/category-spices.png", IsActive: true},
	{ID: mustObjectID("650000000000000000000004"), Name: "Herbal Products", Slug: "herbal", Description: "Natural herbal remedies", Image: "/images/category-herbal.png", IsActive: true},
	{ID: mustObjectID("650000000000000000000005"), Name: "Cleaning Solutions", Slug: "cleaning", Description: "Eco-friendly cleaning products", Image: "/images/category-cleaning.png", IsActive: true},
}

var mockProducts = []models.Product{
	{
		ID: mustObjectID("650000000000000000000101"), Name: "Organic Turmeric Powder", Slug: "organic-turmeric-powder",
		Description: "100% organic turmeric powder, freshly ground and packed.",
		CategoryID:  mockCategories[2].ID, CategoryName: "Spices", Price: 150, Quantity: 120,
		Images:        []string{"/images/turmeric-powder.png"},
		VendorDetails: models.VendorDetails{VendorID: "1", Name: "Gharguti Spices"},
		AverageRating: 4.6, DiscountPercentage: 0, IsFeatured: true, IsActive: true,
	},
	{
		ID: mustObjectID("650000000000000000000102"), Name: "Homemade Mango Pickle", Slug: "homemade-mango-pickle",
		Description: "Traditional mango pickle made with cold-pressed oil.",
		CategoryID:  mockCategories[0].ID, CategoryName: "Food Products", Price: 250, Quantity: 60,
		Images:        []string{"/images/mango-pickle.png"},
		VendorDetails: models.VendorDetails{VendorID: "2", Name: "Aaji's Kitchen"},
		AverageRating: 4.8, DiscountPercentage: 10, IsFeatured: true, IsActive: true,
	},
	{
		ID: mustObjectID("650000000000000000000103"), Name: "Herbal Tea", Slug: "herbal-tea",
		Description: "Caffeine-free herbal infusion with tulsi and ginger.",
		CategoryID:  mockCategories[3].ID, CategoryName: "Herbal Products", Price: 200, Quantity: 80,
		Images:        []string{"/images/herbal-tea.png"},
		VendorDetails: models.VendorDetails{VendorID: "3", Name: "Nisarg Herbals"},
		AverageRating: 4.3, DiscountPercentage: 0, IsFeatured: true, IsActive: true,
	},
	{
		ID: mustObjectID("650000000000000000000104"), Name: "Fresh Cookies", Slug: "fresh-cookies",
		Description: "Butter cookies baked fresh every morning.",
		CategoryID:  mockCategories[1].ID, CategoryName: "Bakery Items", Price: 150, Quantity: 40,
		Images:        []string{"/images/fresh-cookies.png"},
		VendorDetails: models.VendorDetails{VendorID: "4", Name: "Sunrise Bakery"},
		AverageRating: 4.5, DiscountPercentage: 5, IsFeatured: false, IsActive: true,
	},
	{
		ID: mustObjectID("650000000000000000000105"), Name: "Natural Floor Cleaner", Slug: "natural-floor-cleaner",
		Description: "Bio-enzyme floor cleaner, safe for kids and pets.",
		CategoryID:  mockCategories[4].ID, CategoryName: "Cleaning Solutions", Price: 180, Quantity: 90,
		Images:        []string{"/images/floor-cleaner.png"},
		VendorDetails: models.VendorDetails{VendorID: "5", Name: "GreenHome"},
		AverageRating: 4.1, DiscountPercentage: 0, IsFeatured: false, IsActive: true,
	},
	{
		ID: mustObjectID("650000000000000000000106"), Name: "Multigrain Flour", Slug: "multigrain-flour",
		Description: "Stone-ground multigrain flour, 1kg pack.",
		CategoryID:  mockCategories[0].ID, CategoryName: "Food Products", Price: 220, Quantity: 100,
		Images:        []string{"/images/multigrain-flour.png"},
		VendorDetails: models.VendorDetails{VendorID: "2", Name: "Aaji's Kitchen"},
		AverageRating: 4.4, DiscountPercentage: 0, IsFeatured: true, IsActive: true,
	},
}

type mockProductRepository struct {
	products []models.Product
}

func NewMockProductRepository() ProductRepository {
	products := make([]models.Product, len(mockProducts))
	copy(products, mockProducts)
	now := time.Now()
	for i := range products {
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}
	return &mockProductRepository{products: products}
}

func (r *mockProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (r *mockProductRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Product, error) {
	return paginate(r.products, limit, offset), nil
}

func (r *mockProductRepository) GetFeatured(ctx context.Context) ([]models.Product, error) {
	var featured []models.Product
	for _, p := range r.products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

func (r *mockProductRepository) GetByCategorySlug(ctx context.Context, slug string, limit, offset int) ([]models.Product, error) {
	var category *models.Category
	for i := range mockCategories {
		if mockCategories[i].Slug == slug {
			category = &mockCategories[i]
			break
		}
	}
	if category == nil {
		return nil, ErrNotFound
	}

	var matched []models.Product
	for _, p := range r.products {
		if p.CategoryID == category.ID {
			matched = append(matched, p)
		}
	}
	return paginate(matched, limit, offset), nil
}

func (r *mockProductRepository) Search(ctx context.Context, query string, limit, offset int) ([]models.Product, error) {
	q := strings.ToLower(query)
	var matched []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, limit, offset), nil
}

func paginate(products []models.Product, limit, offset int) []models.Product {
	if offset >= len(products) {
		return []models.Product{}
	}
	end := offset + limit
	if limit <= 0 || end > len(products) {
		end = len(products)
	}
	return products[offset:end]
}

type mockCategoryRepository struct{}

func NewMockCategoryRepository() CategoryRepository {
	return &mockCategoryRepository{}
}

func (r *mockCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, len(mockCategories))
	copy(categories, mockCategories)
	return categories, nil
}

func (r *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range mockCategories {
		if mockCategories[i].Slug == slug {
			category := mockCategories[i]
			return &category, nil
		}
	}
	return nil, ErrNotFound
}
