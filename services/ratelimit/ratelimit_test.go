package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	t.Run("Allows Up To Limit Then Denies", func(t *testing.T) {
		l := New(20, time.Minute)

		for i := 0; i < 20; i++ {
			assert.True(t, l.Allow("1.2.3.4"), "request %d should pass", i+1)
		}
		assert.False(t, l.Allow("1.2.3.4"))
		assert.False(t, l.Allow("1.2.3.4"))
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		l := New(1, time.Minute)

		assert.True(t, l.Allow("a"))
		assert.False(t, l.Allow("a"))
		assert.True(t, l.Allow("b"))
	})

	t.Run("Window Expiry Starts A Fresh Count", func(t *testing.T) {
		current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		l := New(2, time.Minute)
		l.now = func() time.Time { return current }

		assert.True(t, l.Allow("k"))
		assert.True(t, l.Allow("k"))
		assert.False(t, l.Allow("k"))

		// One nanosecond before the boundary the window still holds.
		current = current.Add(time.Minute - time.Nanosecond)
		assert.False(t, l.Allow("k"))

		// At the boundary the counter resets completely.
		current = current.Add(time.Nanosecond)
		assert.True(t, l.Allow("k"))
		assert.True(t, l.Allow("k"))
		assert.False(t, l.Allow("k"))
	})
}

func TestSweep(t *testing.T) {
	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := New(5, time.Minute)
	l.now = func() time.Time { return current }

	l.Allow("old")
	current = current.Add(30 * time.Second)
	l.Allow("fresh")
	assert.Equal(t, 2, l.Len())

	// "old" expires at 12:01:00, "fresh" at 12:01:30.
	current = time.Date(2025, 1, 1, 12, 1, 10, 0, time.UTC)
	l.Sweep()

	assert.Equal(t, 1, l.Len())
	// The surviving record keeps its count.
	for i := 0; i < 4; i++ {
		assert.True(t, l.Allow("fresh"))
	}
	assert.False(t, l.Allow("fresh"))
}
