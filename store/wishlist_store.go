package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"techmart-backend/models"
)

// ErrNotInWishlist is returned by MoveToCart for unknown products.
var ErrNotInWishlist = errors.New("product not in wishlist")

// WishlistStore is the saved-products set, one slot per user.
type WishlistStore struct {
	region Region
	mu     sync.Mutex
}

func NewWishlistStore(region Region) *WishlistStore {
	return &WishlistStore{region: region}
}

func wishlistSlot(userID string) string {
	return fmt.Sprintf("wishlist:user:%s", userID)
}

func (s *WishlistStore) Get(ctx context.Context, userID string) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

// Add saves a product; saving one that is already present is a no-op.
func (s *WishlistStore) Add(ctx context.Context, userID string, item models.WishlistItem) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	wl.Add(item)
	if err := s.save(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

func (s *WishlistStore) Remove(ctx context.Context, userID, productID string) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	wl.Remove(productID)
	if err := s.save(ctx, wl); err != nil {
		return nil, err
	}
	return wl, nil
}

// Contains reports whether the product is in the user's wishlist.
func (s *WishlistStore) Contains(ctx context.Context, userID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}
	return wl.Contains(productID), nil
}

// MoveToCart moves a saved product into the cart as one operation: the
// item is added to the cart, then removed from the wishlist. If the
// wishlist write fails, the cart is restored to its prior snapshot so
// the item does not end up in both places.
func (s *WishlistStore) MoveToCart(ctx context.Context, userID, productID string, cart *CartStore) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	item, ok := wl.Find(productID)
	if !ok {
		return nil, ErrNotInWishlist
	}

	prior, err := cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := cart.Add(ctx, userID, models.CartItem{
		ProductID:  item.ProductID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Image:      item.Image,
		Slug:       item.Slug,
		Quantity:   1,
	}); err != nil {
		return nil, err
	}

	wl.Remove(productID)
	if err := s.save(ctx, wl); err != nil {
		// Undo the cart half so the move stays all-or-nothing.
		if rbErr := cart.replace(ctx, prior); rbErr != nil {
			return nil, fmt.Errorf("wishlist update failed: %v (cart rollback also failed: %v)", err, rbErr)
		}
		return nil, err
	}
	return wl, nil
}

func (s *WishlistStore) load(ctx context.Context, userID string) (*models.Wishlist, error) {
	data, err := s.region.Read(ctx, wishlistSlot(userID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}, nil
	}

	var wl models.Wishlist
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}
	return &wl, nil
}

func (s *WishlistStore) save(ctx context.Context, wl *models.Wishlist) error {
	wl.UpdatedAt = time.Now()
	data, err := json.Marshal(wl)
	if err != nil {
		return err
	}
	return s.region.Write(ctx, wishlistSlot(wl.UserID), data)
}
