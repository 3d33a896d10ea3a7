package models

import "time"

// CartItem is a single line in a cart: one product plus its quantity.
// Prices are integer cents so totals stay exact.
type CartItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image,omitempty"`
	Slug       string `json:"slug"`
	Quantity   int    `json:"quantity"`
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Add merges an item into the cart. Adding a product that is already
// present increments its quantity instead of appending a second line.
// A non-positive quantity on the incoming item defaults to 1.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	for i, existing := range c.Items {
		if existing.ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove deletes the line for the given product. Removing an absent
// product is a no-op, not an error.
func (c *Cart) Remove(productID string) {
	newItems := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	c.Items = newItems
}

// SetQuantity sets the quantity of a line directly and reports whether
// the product was present. The cart does not clamp: callers are
// responsible for validating the value.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// SubtotalCents returns the sum of price x quantity over all lines.
func (c *Cart) SubtotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}
