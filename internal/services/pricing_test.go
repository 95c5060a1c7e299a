package services

import (
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestShippingFee(t *testing.T) {
	assert.Equal(t, 50.0, ShippingFee(0))
	assert.Equal(t, 50.0, ShippingFee(499))
	assert.Equal(t, 50.0, ShippingFee(499.99))
	assert.Equal(t, 0.0, ShippingFee(500))
	assert.Equal(t, 0.0, ShippingFee(1200))
}

func TestTaxAmount(t *testing.T) {
	assert.Equal(t, 180.0, TaxAmount(1000))
	assert.Equal(t, 0.0, TaxAmount(0))
}

func TestGrandTotal(t *testing.T) {
	// Below the free shipping threshold the flat fee applies.
	assert.Equal(t, 100+50+18.0, GrandTotal(100))
	// At and above the threshold shipping is waived.
	assert.Equal(t, 1000+180.0, GrandTotal(1000))
}

func TestSubtotal(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "p1", Price: 200, Quantity: 3},
		{ProductID: "p2", Price: 150, Quantity: 1},
	}
	assert.Equal(t, 750.0, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}

// Three units of a 200 rupee product clear the free shipping threshold and
// pay tax on the subtotal only.
func TestPricingCartScenario(t *testing.T) {
	items := []models.CartLineItem{
		{ProductID: "tea", Name: "Herbal Tea", Price: 200, Quantity: 3},
	}

	subtotal := Subtotal(items)
	assert.Equal(t, 600.0, subtotal)
	assert.Equal(t, 0.0, ShippingFee(subtotal))
	assert.Equal(t, 108.0, TaxAmount(subtotal))
	assert.Equal(t, 708.0, GrandTotal(subtotal))
}
