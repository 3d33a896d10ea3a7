package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"techmart-backend/models"
)

// CartStore is the server-side cart state, one slot per user. Every
// mutation is written through to the region before it is returned, so
// state survives restarts the same way the client-side original
// survived reloads.
type CartStore struct {
	region Region
	mu     sync.Mutex
}

func NewCartStore(region Region) *CartStore {
	return &CartStore{region: region}
}

func cartSlot(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

// Get returns the user's cart, or an empty cart when none was saved.
func (s *CartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, userID)
}

// Add merges an item into the cart and persists the result.
func (s *CartStore) Add(ctx context.Context, userID string, item models.CartItem) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Add(item)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes a line by product id; absent products are a no-op.
func (s *CartStore) Remove(ctx context.Context, userID, productID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	cart.Remove(productID)
	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity sets a line quantity directly. It reports whether the
// product was present; the quantity itself is not clamped here.
func (s *CartStore) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*models.Cart, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	found := cart.SetQuantity(productID, quantity)
	if !found {
		return cart, false, nil
	}
	if err := s.save(ctx, cart); err != nil {
		return nil, false, err
	}
	return cart, true, nil
}

// Clear empties the cart, used after a simulated successful payment.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region.Delete(ctx, cartSlot(userID))
}

// replace writes a full cart snapshot, used by the wishlist move
// rollback path.
func (s *CartStore) replace(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, cart)
}

func (s *CartStore) load(ctx context.Context, userID string) (*models.Cart, error) {
	data, err := s.region.Read(ctx, cartSlot(userID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return &models.Cart{UserID: userID, Items: []models.CartItem{}}, nil
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartStore) save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.region.Write(ctx, cartSlot(cart.UserID), data)
}
