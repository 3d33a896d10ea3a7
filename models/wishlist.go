package models

import "time"

// WishlistItem is a product saved for later. Unlike a cart line it
// carries no quantity: the wishlist is a set keyed by product id.
type WishlistItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Image      string `json:"image,omitempty"`
	Slug       string `json:"slug"`
}

type Wishlist struct {
	UserID    string         `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Add inserts the item unless a line with the same product id already
// exists.
func (w *Wishlist) Add(item WishlistItem) {
	if w.Contains(item.ProductID) {
		return
	}
	w.Items = append(w.Items, item)
}

// Remove deletes by product id, no-op when absent.
func (w *Wishlist) Remove(productID string) {
	newItems := w.Items[:0]
	for _, item := range w.Items {
		if item.ProductID != productID {
			newItems = append(newItems, item)
		}
	}
	w.Items = newItems
}

// Contains reports whether the product is saved.
func (w *Wishlist) Contains(productID string) bool {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// Find returns the saved item for the product id, if any.
func (w *Wishlist) Find(productID string) (WishlistItem, bool) {
	for _, item := range w.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return WishlistItem{}, false
}
