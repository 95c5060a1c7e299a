package handlers

import (
	"context"

	"golang-storefront-backend/internal/services"
)

// CartServiceInterface defines the cart operations the handler depends on
type CartServiceInterface interface {
	GetCart(ctx context.Context, userID string) (*services.CartResponse, error)
	AddItem(ctx context.Context, userID string, req *services.AddToCartRequest) (*services.CartResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*services.CartResponse, error)
	RemoveItem(ctx context.Context, userID, productID string) (*services.CartResponse, error)
	Clear(ctx context.Context, userID string) error
}

// CheckoutServiceInterface defines the checkout operations the handler depends on
type CheckoutServiceInterface interface {
	CartSummary(ctx context.Context, userID string) (*services.OrderSummaryResponse, error)
	SingleItemSummary(item *services.SingleItem) (*services.OrderSummaryResponse, error)
	PlaceOrder(ctx context.Context, userID string, req *services.PlaceOrderRequest) (*services.PlaceOrderResponse, error)
}
