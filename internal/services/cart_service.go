package services

import (
	"context"
	"errors"

	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"
)

// CartService is the single source of truth for a user's active cart. Every
// mutation rewrites the persisted cart document before returning, so the
// stored mirror is never behind the in-memory state handed to callers.
type CartService struct {
	store repositories.CartStore
}

func NewCartService(store repositories.CartStore) *CartService {
	return &CartService{store: store}
}

type AddToCartRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"omitempty,gt=0"`
	Image     string  `json:"image"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"gte=0"`
}

type CartResponse struct {
	Items     []models.CartLineItem `json:"items"`
	Total     float64               `json:"total"`
	ItemCount int                   `json:"item_count"`
}

func cartResponse(cart *models.Cart) *CartResponse {
	return &CartResponse{
		Items:     cart.Items,
		Total:     cart.Total,
		ItemCount: cart.ItemCount(),
	}
}

// GetCart restores the user's cart from the durable store. A missing or
// unreadable stored value yields the empty cart.
func (s *CartService) GetCart(ctx context.Context, userID string) (*CartResponse, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return cartResponse(cart), nil
}

// AddItem merges the quantity into an existing line for the same product, or
// appends a new line. A zero quantity in the request defaults to 1.
func (s *CartService) AddItem(ctx context.Context, userID string, req *AddToCartRequest) (*CartResponse, error) {
	if req.Price < 0 {
		return nil, errors.New("price must be non-negative")
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, errors.New("quantity must be a positive integer")
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.AddItem(models.CartLineItem{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  quantity,
		Image:     req.Image,
	})

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cartResponse(cart), nil
}

// UpdateQuantity replaces the quantity of the matching line. Zero removes the
// line; an absent product is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*CartResponse, error) {
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.UpdateQuantity(productID, quantity)

	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cartResponse(cart), nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*CartResponse, error) {
	return s.UpdateQuantity(ctx, userID, productID, 0)
}

// Clear resets to the empty cart. Called after a confirmed order placement
// and on explicit user action.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.store.Clear(ctx, userID)
}
