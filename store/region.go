// Package store holds the persisted client-state stores: cart,
// wishlist and session. Each store keeps its state in a Region, a
// durable key-value area with atomic read/write per named slot, and
// writes the slot back on every mutation.
package store

import "context"

// Region is a durable key-value area. Read returns (nil, nil) for a
// slot that was never written. Write must replace the slot atomically.
type Region interface {
	Read(ctx context.Context, slot string) ([]byte, error)
	Write(ctx context.Context, slot string, data []byte) error
	Delete(ctx context.Context, slot string) error
}
