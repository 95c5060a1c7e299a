package services

import (
	"context"
	"errors"
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddressRepo struct {
	addresses map[uuid.UUID]*models.Address
	getCalls  int
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[uuid.UUID]*models.Address)}
}

func (f *fakeAddressRepo) Create(ctx context.Context, address *models.Address) error {
	f.addresses[address.ID] = address
	return nil
}

func (f *fakeAddressRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Address, error) {
	f.getCalls++
	if address, ok := f.addresses[id]; ok {
		return address, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakeAddressRepo) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Address, error) {
	var out []models.Address
	for _, a := range f.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAddressRepo) Update(ctx context.Context, address *models.Address) error { return nil }
func (f *fakeAddressRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }
func (f *fakeAddressRepo) UnsetDefaultAddresses(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type fakeOrderRepo struct {
	orders    []*models.Order
	createErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = uuid.New()
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *models.Order) error { return nil }

func (f *fakeOrderRepo) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Order, int64, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) GetByStatus(ctx context.Context, status string, limit, offset int) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if o.Status == status {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = uuid.New()
	f.payments = append(f.payments, payment)
	return nil
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return nil, errors.New("record not found")
}

func (f *fakePaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *models.Payment) error { return nil }

type checkoutFixture struct {
	service     *CheckoutService
	cartStore   *fakeCartStore
	addressRepo *fakeAddressRepo
	orderRepo   *fakeOrderRepo
	paymentRepo *fakePaymentRepo
	userID      uuid.UUID
	addressID   uuid.UUID
}

func newCheckoutFixture() *checkoutFixture {
	cartStore := newFakeCartStore()
	addressRepo := newFakeAddressRepo()
	orderRepo := &fakeOrderRepo{}
	paymentRepo := &fakePaymentRepo{}

	userID := uuid.New()
	addressID := uuid.New()
	addressRepo.addresses[addressID] = &models.Address{
		ID:           addressID,
		UserID:       userID,
		AddressLine1: "12 Market Road",
		City:         "Chennai",
		State:        "Tamil Nadu",
		PostalCode:   "600001",
		Country:      "India",
	}

	return &checkoutFixture{
		service:     NewCheckoutService(cartStore, addressRepo, orderRepo, paymentRepo, nil, nil),
		cartStore:   cartStore,
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		userID:      userID,
		addressID:   addressID,
	}
}

func (fx *checkoutFixture) seedCart(t *testing.T, items ...models.CartLineItem) {
	t.Helper()
	cart := models.NewCart()
	for _, item := range items {
		cart.AddItem(item)
	}
	require.NoError(t, fx.cartStore.Save(context.Background(), fx.userID.String(), cart))
	fx.cartStore.saveCalls = 0
}

func TestCartSummaryAppliesPricingRules(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 3})

	summary, err := fx.service.CartSummary(context.Background(), fx.userID.String())
	require.NoError(t, err)

	assert.Equal(t, 600.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.ShippingFee)
	assert.Equal(t, 108.0, summary.TaxAmount)
	assert.Equal(t, 708.0, summary.GrandTotal)
}

func TestCartSummaryEmptyCart(t *testing.T) {
	fx := newCheckoutFixture()

	summary, err := fx.service.CartSummary(context.Background(), fx.userID.String())
	require.NoError(t, err)

	assert.Empty(t, summary.Items)
	assert.Equal(t, 0.0, summary.Subtotal)
	assert.Equal(t, 50.0, summary.ShippingFee)
}

// The buy-now price parameter is the precomputed line total, so the summary
// uses it as the subtotal directly.
func TestSingleItemSummary(t *testing.T) {
	fx := newCheckoutFixture()

	summary, err := fx.service.SingleItemSummary(&SingleItem{
		ProductID: "p1",
		Name:      "Mango Pickle",
		Price:     750,
		Quantity:  3,
	})
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 250.0, summary.Items[0].Price)
	assert.Equal(t, 750.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.ShippingFee)
	assert.Equal(t, 135.0, summary.TaxAmount)
	assert.Equal(t, 885.0, summary.GrandTotal)
}

func TestSingleItemSummaryRejectsBadInput(t *testing.T) {
	fx := newCheckoutFixture()

	_, err := fx.service.SingleItemSummary(&SingleItem{Name: "x", Price: -1, Quantity: 1})
	assert.Error(t, err)

	_, err = fx.service.SingleItemSummary(&SingleItem{Name: "x", Price: 100, Quantity: 0})
	assert.Error(t, err)
}

func TestPlaceOrderRequiresAddressBeforeAnyLookup(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})

	_, err := fx.service.PlaceOrder(context.Background(), fx.userID.String(), &PlaceOrderRequest{
		PaymentMethod: "cod",
	})

	require.Error(t, err)
	assert.Equal(t, "please select a delivery address", err.Error())
	assert.Equal(t, 0, fx.addressRepo.getCalls)
	assert.Equal(t, 0, fx.cartStore.loadCalls)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestPlaceOrderRejectsForeignAddress(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})

	otherAddress := uuid.New()
	fx.addressRepo.addresses[otherAddress] = &models.Address{
		ID:     otherAddress,
		UserID: uuid.New(),
	}

	_, err := fx.service.PlaceOrder(context.Background(), fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: otherAddress.String(),
		PaymentMethod:   "cod",
	})

	assert.Error(t, err)
	assert.Empty(t, fx.orderRepo.orders)
}

func TestPlaceOrderFromCartClearsCart(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t,
		models.CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 2},
		models.CartLineItem{ProductID: "p2", Name: "Fresh Cookies", Price: 150, Quantity: 1},
	)
	ctx := context.Background()

	resp, err := fx.service.PlaceOrder(ctx, fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   "upi",
	})
	require.NoError(t, err)

	require.Len(t, fx.orderRepo.orders, 1)
	order := resp.Order
	assert.Equal(t, 550.0, order.Subtotal)
	assert.Equal(t, 0.0, order.ShippingCost)
	assert.Equal(t, 99.0, order.Tax)
	assert.Equal(t, 649.0, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "upi", order.PaymentMethod)
	assert.Contains(t, order.OrderNumber, "ORD")

	require.Len(t, fx.paymentRepo.payments, 1)
	assert.Equal(t, order.Total, fx.paymentRepo.payments[0].Amount)
	assert.Equal(t, "TXN-"+order.OrderNumber, fx.paymentRepo.payments[0].TransactionID)

	// Cart-sourced order: the cart is cleared after confirmation.
	cart, err := fx.cartStore.Load(ctx, fx.userID.String())
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestPlaceOrderBuyNowLeavesCartAlone(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 1})
	ctx := context.Background()

	resp, err := fx.service.PlaceOrder(ctx, fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   "cod",
		Items: []OrderItemRequest{
			{Product: "p9", Name: "Multigrain Flour", Quantity: 3, Price: 220},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 660.0, resp.Order.Subtotal)
	assert.Equal(t, 0.0, resp.Order.ShippingCost)

	// Buy-now order: the cart survives untouched.
	cart, err := fx.cartStore.Load(ctx, fx.userID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	fx := newCheckoutFixture()

	_, err := fx.service.PlaceOrder(context.Background(), fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   "cod",
	})

	require.Error(t, err)
	assert.Equal(t, "cart is empty", err.Error())
	assert.Empty(t, fx.orderRepo.orders)
}

func TestPlaceOrderFailureKeepsCart(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})
	fx.orderRepo.createErr = errors.New("database unavailable")
	ctx := context.Background()

	_, err := fx.service.PlaceOrder(ctx, fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   "cod",
	})
	require.Error(t, err)

	// A failed submission must not touch the cart.
	cart, err := fx.cartStore.Load(ctx, fx.userID.String())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Empty(t, fx.paymentRepo.payments)
}

func TestPlaceOrderBillingDefaultsToShipping(t *testing.T) {
	fx := newCheckoutFixture()
	fx.seedCart(t, models.CartLineItem{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})

	resp, err := fx.service.PlaceOrder(context.Background(), fx.userID.String(), &PlaceOrderRequest{
		ShippingAddress: fx.addressID.String(),
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	assert.Equal(t, fx.addressID, resp.Order.ShippingAddressID)
	assert.Equal(t, fx.addressID, resp.Order.BillingAddressID)
}
