package services

import (
	"context"
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeTestOrder(t *testing.T, fx *checkoutFixture, method string) *models.Order {
	t.Helper()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 2})

	resp, err := fx.service.PlaceOrder(context.Background(), fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   method,
	})
	require.NoError(t, err)
	return resp.Order
}

func TestGetUserOrders(t *testing.T) {
	fx := newCheckoutFixture()
	placeTestOrder(t, fx, "cod")
	service := NewOrderService(fx.orderRepo, fx.paymentRepo)

	resp, err := service.GetUserOrders(context.Background(), fx.userID.String(), 1, 20)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, 1, resp.TotalPages)
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, fx.userID, resp.Orders[0].UserID)
}

func TestGetOrderByIDEnforcesOwnership(t *testing.T) {
	fx := newCheckoutFixture()
	order := placeTestOrder(t, fx, "card")
	service := NewOrderService(fx.orderRepo, fx.paymentRepo)
	ctx := context.Background()

	detail, err := service.GetOrderByID(ctx, fx.userID.String(), order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, order.ID, detail.Order.ID)
	require.NotNil(t, detail.Payment)
	assert.Equal(t, order.Total, detail.Payment.Amount)

	_, err = service.GetOrderByID(ctx, uuid.NewString(), order.ID.String())
	assert.Error(t, err)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	fx := newCheckoutFixture()
	order := placeTestOrder(t, fx, "cod")
	service := NewOrderService(fx.orderRepo, fx.paymentRepo)

	_, err := service.UpdateOrderStatus(context.Background(), order.ID.String(), "teleported")
	assert.Error(t, err)
}

// Marking a cash-on-delivery order delivered settles its payment.
func TestUpdateOrderStatusDeliveredSettlesCOD(t *testing.T) {
	fx := newCheckoutFixture()
	order := placeTestOrder(t, fx, "cod")
	service := NewOrderService(fx.orderRepo, fx.paymentRepo)
	ctx := context.Background()

	updated, err := service.UpdateOrderStatus(ctx, order.ID.String(), "delivered")
	require.NoError(t, err)

	assert.Equal(t, "delivered", updated.Status)
	assert.Equal(t, "paid", updated.PaymentStatus)

	payment, err := fx.paymentRepo.GetByOrderID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", payment.Status)
}

func TestGetOrdersByStatus(t *testing.T) {
	fx := newCheckoutFixture()
	placeTestOrder(t, fx, "upi")
	service := NewOrderService(fx.orderRepo, fx.paymentRepo)
	ctx := context.Background()

	orders, err := service.GetOrdersByStatus(ctx, "pending", 1, 20)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = service.GetOrdersByStatus(ctx, "shipped", 1, 20)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = service.GetOrdersByStatus(ctx, "bogus", 1, 20)
	assert.Error(t, err)
}
