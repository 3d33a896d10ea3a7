package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingCents(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"Empty Cart Pays Flat Rate", 0, FlatShippingCents},
		{"Below Threshold Pays Flat Rate", 19999, FlatShippingCents},
		{"Exactly At Threshold Still Pays", FreeShippingThresholdCents, FlatShippingCents},
		{"One Cent Over Threshold Is Free", FreeShippingThresholdCents + 1, 0},
		{"Well Over Threshold Is Free", 1_000_00, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingCents(tt.subtotal))
		})
	}
}

func TestQuoteFor(t *testing.T) {
	t.Run("Total Is Subtotal Plus Shipping", func(t *testing.T) {
		q := QuoteFor(15000)
		assert.Equal(t, int64(15000), q.SubtotalCents)
		assert.Equal(t, FlatShippingCents, q.ShippingCents)
		assert.Equal(t, int64(15000)+FlatShippingCents, q.TotalCents)
	})

	t.Run("Free Shipping Quote", func(t *testing.T) {
		q := QuoteFor(25000)
		assert.Equal(t, int64(0), q.ShippingCents)
		assert.Equal(t, int64(25000), q.TotalCents)
	})
}
