package services

import (
	"context"
	"errors"
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartStore is an in-memory stand-in for the Redis-backed store. It
// counts calls so tests can assert persistence happened (or did not).
type fakeCartStore struct {
	carts     map[string]*models.Cart
	saveCalls int
	loadCalls int
	saveErr   error
	clearErr  error
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]*models.Cart)}
}

func (f *fakeCartStore) Load(ctx context.Context, userID string) (*models.Cart, error) {
	f.loadCalls++
	if cart, ok := f.carts[userID]; ok {
		copied := *cart
		copied.Items = append([]models.CartLineItem{}, cart.Items...)
		return &copied, nil
	}
	return models.NewCart(), nil
}

func (f *fakeCartStore) Save(ctx context.Context, userID string, cart *models.Cart) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[userID] = cart
	return nil
}

func (f *fakeCartStore) Clear(ctx context.Context, userID string) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	delete(f.carts, userID)
	return nil
}

func TestCartServiceGetCartEmpty(t *testing.T) {
	service := NewCartService(newFakeCartStore())

	resp, err := service.GetCart(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
	assert.Equal(t, 0, resp.ItemCount)
}

func TestCartServiceAddItemPersists(t *testing.T) {
	store := newFakeCartStore()
	service := NewCartService(store)
	ctx := context.Background()

	resp, err := service.AddItem(ctx, "user-1", &AddToCartRequest{
		ProductID: "p1",
		Name:      "Herbal Tea",
		Price:     200,
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 400.0, resp.Total)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, 1, store.saveCalls)

	// A fresh load sees the persisted cart.
	resp, err = service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Herbal Tea", resp.Items[0].Name)
}

func TestCartServiceAddItemDefaultsQuantityToOne(t *testing.T) {
	service := NewCartService(newFakeCartStore())

	resp, err := service.AddItem(context.Background(), "user-1", &AddToCartRequest{
		ProductID: "p1",
		Name:      "Mango Pickle",
		Price:     250,
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestCartServiceAddItemRejectsNegativeValues(t *testing.T) {
	store := newFakeCartStore()
	service := NewCartService(store)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "x", Price: -1, Quantity: 1})
	assert.Error(t, err)

	_, err = service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "x", Price: 10, Quantity: -2})
	assert.Error(t, err)

	assert.Equal(t, 0, store.saveCalls)
}

func TestCartServiceAddSameProductMerges(t *testing.T) {
	service := NewCartService(newFakeCartStore())
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})
	require.NoError(t, err)

	resp, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 2})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, 600.0, resp.Total)
}

func TestCartServiceUpdateQuantityZeroRemoves(t *testing.T) {
	store := newFakeCartStore()
	service := NewCartService(store)
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 2})
	require.NoError(t, err)

	resp, err := service.UpdateQuantity(ctx, "user-1", "p1", 0)
	require.NoError(t, err)

	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)
}

func TestCartServiceRemoveItemDelegates(t *testing.T) {
	service := NewCartService(newFakeCartStore())
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})
	require.NoError(t, err)
	_, err = service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p2", Name: "Flour", Price: 220, Quantity: 1})
	require.NoError(t, err)

	resp, err := service.RemoveItem(ctx, "user-1", "p1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "p2", resp.Items[0].ProductID)
}

func TestCartServicePropagatesSaveFailure(t *testing.T) {
	store := newFakeCartStore()
	store.saveErr = errors.New("store unavailable")
	service := NewCartService(store)

	_, err := service.AddItem(context.Background(), "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})
	assert.Error(t, err)
}

func TestCartServiceCartsAreIsolatedPerUser(t *testing.T) {
	service := NewCartService(newFakeCartStore())
	ctx := context.Background()

	_, err := service.AddItem(ctx, "user-1", &AddToCartRequest{ProductID: "p1", Name: "Tea", Price: 200, Quantity: 1})
	require.NoError(t, err)

	resp, err := service.GetCart(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}
