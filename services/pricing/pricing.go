// Package pricing holds the checkout money rules. All amounts are
// integer cents.
package pricing

// Shipping rule: orders strictly above the threshold ship free,
// everything else pays the flat rate. A subtotal of exactly R$ 200,00
// still pays shipping.
const (
	FreeShippingThresholdCents int64 = 200_00
	FlatShippingCents          int64 = 15_00
)

// Quote is the derived checkout summary for a cart subtotal.
type Quote struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	ShippingCents int64 `json:"shipping_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// ShippingCents returns the shipping cost for a subtotal.
func ShippingCents(subtotalCents int64) int64 {
	if subtotalCents > FreeShippingThresholdCents {
		return 0
	}
	return FlatShippingCents
}

// QuoteFor derives the full checkout summary.
func QuoteFor(subtotalCents int64) Quote {
	shipping := ShippingCents(subtotalCents)
	return Quote{
		SubtotalCents: subtotalCents,
		ShippingCents: shipping,
		TotalCents:    subtotalCents + shipping,
	}
}
