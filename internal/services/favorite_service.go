package services

import (
	"context"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"
)

// FavoriteService keeps the per-user "liked" product set.
type FavoriteService struct {
	store repositories.FavoriteStore
}

func NewFavoriteService(store repositories.FavoriteStore) *FavoriteService {
	return &FavoriteService{store: store}
}

type ToggleFavoriteRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
}

type FavoritesResponse struct {
	Favorites []models.FavoriteEntry `json:"favorites"`
	Count     int                    `json:"count"`
}

func (s *FavoriteService) GetFavorites(ctx context.Context, userID string) (*FavoritesResponse, error) {
	favorites, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &FavoritesResponse{
		Favorites: favorites.Entries,
		Count:     len(favorites.Entries),
	}, nil
}

// Toggle flips membership: a liked product is removed, an unliked one is
// appended. Returns whether the product is liked after the call.
func (s *FavoriteService) Toggle(ctx context.Context, userID string, req *ToggleFavoriteRequest) (bool, *FavoritesResponse, error) {
	favorites, err := s.store.Load(ctx, userID)
	if err != nil {
		return false, nil, err
	}

	liked := favorites.Toggle(models.FavoriteEntry{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
	})

	if err := s.store.Save(ctx, userID, favorites); err != nil {
		return false, nil, err
	}

	return liked, &FavoritesResponse{
		Favorites: favorites.Entries,
		Count:     len(favorites.Entries),
	}, nil
}
