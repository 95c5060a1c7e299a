package models

// CartLineItem is one product entry in a cart with its quantity. A cart holds
// at most one line per ProductID; adding the same product again merges into
// the existing line.
type CartLineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// LineTotal returns price * quantity for this line.
func (i CartLineItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Cart is the serialized per-user cart document. Items keep insertion order,
// Total is recomputed after every mutation so it is always consistent with
// the lines.
type Cart struct {
	Items []CartLineItem `json:"items"`
	Total float64        `json:"total"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartLineItem{}}
}

// AddItem appends a new line, or merges the quantity into the existing line
// when the product is already in the cart.
func (c *Cart) AddItem(item CartLineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.recalcTotal()
			return
		}
	}
	c.Items = append(c.Items, item)
	c.recalcTotal()
}

// UpdateQuantity replaces the quantity of the matching line. A quantity of
// zero or less removes the line. No-op when the product is absent.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.recalcTotal()
			return
		}
	}
}

// RemoveItem filters out the matching line. No-op when absent.
func (c *Cart) RemoveItem(productID string) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
	c.recalcTotal()
}

// Clear resets to the empty cart.
func (c *Cart) Clear() {
	c.Items = []CartLineItem{}
	c.Total = 0
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Contains reports whether the cart holds a line for the product.
func (c *Cart) Contains(productID string) bool {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (c *Cart) recalcTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	c.Total = total
}

// FavoriteEntry is a liked product. Set semantics keyed by ProductID: no
// quantity, no duplicates.
type FavoriteEntry struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// FavoriteList is the serialized per-user favorites document.
type FavoriteList struct {
	Entries []FavoriteEntry `json:"entries"`
}

// Toggle removes the entry when the product is already liked, otherwise
// appends it. Returns true when the product is liked after the call.
func (f *FavoriteList) Toggle(entry FavoriteEntry) bool {
	for i, e := range f.Entries {
		if e.ProductID == entry.ProductID {
			f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
			return false
		}
	}
	f.Entries = append(f.Entries, entry)
	return true
}

// Contains reports whether the product is liked.
func (f *FavoriteList) Contains(productID string) bool {
	for _, e := range f.Entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
