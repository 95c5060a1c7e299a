package repositories

import (
	"context"
	"golang-storefront-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository interface for PostgreSQL user operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AddressRepository interface for PostgreSQL address operations
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Address, error)
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	UnsetDefaultAddresses(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository interface for PostgreSQL order operations
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, int64, error)
	GetByStatus(ctx context.Context, status string, limit, offset int) ([]models.Order, error)
}

// PaymentRepository interface for PostgreSQL payment operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}

// ProductRepository interface for catalog product reads. Backed by MongoDB,
// or by the seeded mock catalog when Mongo is unavailable.
type ProductRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	GetByCategorySlug(ctx context.Context, slug string, limit, offset int) ([]models.Product, error)
	Search(ctx context.Context, query string, limit, offset int) ([]models.Product, error)
}

// CategoryRepository interface for catalog category reads
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
}

// CartStore owns the durable per-user cart document. Load never fails on a
// missing or corrupt stored value: both start as the empty cart.
type CartStore interface {
	Load(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, userID string, cart *models.Cart) error
	Clear(ctx context.Context, userID string) error
}

// FavoriteStore owns the durable per-user favorites document, same contract
// as CartStore.
type FavoriteStore interface {
	Load(ctx context.Context, userID string) (*models.FavoriteList, error)
	Save(ctx context.Context, userID string, favorites *models.FavoriteList) error
}
