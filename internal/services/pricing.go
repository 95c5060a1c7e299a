package services

import "golang-storefront-backend/internal/models"

// Flat storefront pricing rules. Shipping and tax are fixed constants, not a
// rules engine.
const (
	FreeShippingThreshold = 500.0
	FlatShippingFee       = 50.0
	TaxRate               = 0.18
)

// Subtotal sums price * quantity across all lines.
func Subtotal(items []models.CartLineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// ShippingFee is waived once the subtotal reaches the free-shipping threshold.
func ShippingFee(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// TaxAmount applies the flat GST rate to the subtotal.
func TaxAmount(subtotal float64) float64 {
	return subtotal * TaxRate
}

// GrandTotal is subtotal + shipping + tax.
func GrandTotal(subtotal float64) float64 {
	return subtotal + ShippingFee(subtotal) + TaxAmount(subtotal)
}
