package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesExistingLine(t *testing.T) {
	cart := NewCart()

	cart.AddItem(CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 1})
	cart.AddItem(CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 2})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 600.0, cart.Total)
}

func TestCartAddItemAppendsNewLine(t *testing.T) {
	cart := NewCart()

	cart.AddItem(CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 1})
	cart.AddItem(CartLineItem{ProductID: "p2", Name: "Mango Pickle", Price: 250, Quantity: 1})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, 450.0, cart.Total)
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Price: 100, Quantity: 2})

	cart.UpdateQuantity("p1", 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 500.0, cart.Total)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Price: 100, Quantity: 2})
	cart.AddItem(CartLineItem{ProductID: "p2", Price: 50, Quantity: 1})

	cart.UpdateQuantity("p1", 0)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.Equal(t, 50.0, cart.Total)
	assert.False(t, cart.Contains("p1"))
}

func TestCartUpdateQuantityAbsentProductIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Price: 100, Quantity: 1})

	cart.UpdateQuantity("missing", 4)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 100.0, cart.Total)
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Price: 100, Quantity: 1})
	cart.AddItem(CartLineItem{ProductID: "p2", Price: 200, Quantity: 3})

	cart.RemoveItem("p2")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 100.0, cart.Total)

	// Removing an absent product changes nothing.
	cart.RemoveItem("p2")
	assert.Len(t, cart.Items, 1)
}

func TestCartTotalAlwaysMatchesLines(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0.0, cart.Total)

	cart.AddItem(CartLineItem{ProductID: "p1", Price: 150, Quantity: 2})
	cart.AddItem(CartLineItem{ProductID: "p2", Price: 220, Quantity: 1})
	cart.UpdateQuantity("p1", 3)
	cart.RemoveItem("p2")

	expected := 0.0
	for _, item := range cart.Items {
		expected += item.LineTotal()
	}
	assert.Equal(t, expected, cart.Total)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestCartItemCount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Price: 100, Quantity: 2})
	cart.AddItem(CartLineItem{ProductID: "p2", Price: 50, Quantity: 3})

	assert.Equal(t, 5, cart.ItemCount())
}

func TestCartJSONRoundTrip(t *testing.T) {
	cart := NewCart()
	cart.AddItem(CartLineItem{ProductID: "p1", Name: "Herbal Tea", Price: 200, Quantity: 3, Image: "/tea.jpg"})
	cart.AddItem(CartLineItem{ProductID: "p2", Name: "Fresh Cookies", Price: 150, Quantity: 1})

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	var restored Cart
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, cart.Items, restored.Items)
	assert.Equal(t, cart.Total, restored.Total)
}

func TestFavoriteListToggle(t *testing.T) {
	favorites := &FavoriteList{}

	liked := favorites.Toggle(FavoriteEntry{ProductID: "p1", Name: "Herbal Tea", Price: 200})
	assert.True(t, liked)
	assert.True(t, favorites.Contains("p1"))
	require.Len(t, favorites.Entries, 1)

	// Toggling again removes the entry.
	liked = favorites.Toggle(FavoriteEntry{ProductID: "p1", Name: "Herbal Tea", Price: 200})
	assert.False(t, liked)
	assert.False(t, favorites.Contains("p1"))
	assert.Empty(t, favorites.Entries)
}

func TestFavoriteListToggleKeepsOtherEntries(t *testing.T) {
	favorites := &FavoriteList{}
	favorites.Toggle(FavoriteEntry{ProductID: "p1"})
	favorites.Toggle(FavoriteEntry{ProductID: "p2"})
	favorites.Toggle(FavoriteEntry{ProductID: "p3"})

	favorites.Toggle(FavoriteEntry{ProductID: "p2"})

	require.Len(t, favorites.Entries, 2)
	assert.True(t, favorites.Contains("p1"))
	assert.False(t, favorites.Contains("p2"))
	assert.True(t, favorites.Contains("p3"))
}
