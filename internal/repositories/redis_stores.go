package repositories

import (
	"context"
	"log"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/pkg/cache"
)

// Durable per-user documents in Redis. The whole document is rewritten on
// every mutation, so a read always sees the result of the last completed
// write. A missing key starts empty; a corrupt value is discarded and also
// starts empty rather than failing the request.

const (
	cartKeyPrefix     = "cart:"
	favoriteKeyPrefix = "favorites:"
)

type redisCartStore struct {
	cache *cache.RedisCache
}

func NewRedisCartStore(c *cache.RedisCache) CartStore {
	return &redisCartStore{cache: c}
}

func (s *redisCartStore) Load(ctx context.Context, userID string) (*models.Cart, error) {
	cart := models.NewCart()
	err := s.cache.Get(ctx, cartKeyPrefix+userID, cart)
	if err != nil {
		if err != cache.ErrCacheMiss {
			log.Printf("Discarding unreadable cart for user %s: %v", userID, err)
		}
		return models.NewCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	return cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, userID string, cart *models.Cart) error {
	return s.cache.Set(ctx, cartKeyPrefix+userID, cart, 0)
}

func (s *redisCartStore) Clear(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, cartKeyPrefix+userID)
}

type redisFavoriteStore struct {
	cache *cache.RedisCache
}

func NewRedisFavoriteStore(c *cache.RedisCache) FavoriteStore {
	return &redisFavoriteStore{cache: c}
}

func (s *redisFavoriteStore) Load(ctx context.Context, userID string) (*models.FavoriteList, error) {
	favorites := &models.FavoriteList{Entries: []models.FavoriteEntry{}}
	err := s.cache.Get(ctx, favoriteKeyPrefix+userID, favorites)
	if err != nil {
		if err != cache.ErrCacheMiss {
			log.Printf("Discarding unreadable favorites for user %s: %v", userID, err)
		}
		return &models.FavoriteList{Entries: []models.FavoriteEntry{}}, nil
	}
	if favorites.Entries == nil {
		favorites.Entries = []models.FavoriteEntry{}
	}
	return favorites, nil
}

func (s *redisFavoriteStore) Save(ctx context.Context, userID string, favorites *models.FavoriteList) error {
	return s.cache.Set(ctx, favoriteKeyPrefix+userID, favorites, 0)
}
