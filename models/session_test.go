package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionAuthLifecycle(t *testing.T) {
	admin := SessionUser{ID: "u1", Email: "admin@example.com", Name: "Admin", Role: RoleAdmin}

	t.Run("Empty Session Is Anonymous", func(t *testing.T) {
		s := &Session{}
		assert.False(t, s.IsAuthenticated())
		assert.False(t, s.IsAdmin())
	})

	t.Run("SetAuth Establishes User And Tokens Together", func(t *testing.T) {
		s := &Session{}
		s.SetAuth(admin, "access-1", "refresh-1")

		assert.True(t, s.IsAuthenticated())
		assert.True(t, s.IsAdmin())
		assert.Equal(t, "access-1", s.AccessToken)
		assert.Equal(t, "refresh-1", s.RefreshToken)
	})

	t.Run("Logout Clears Everything", func(t *testing.T) {
		s := &Session{}
		s.SetAuth(admin, "access-1", "refresh-1")
		s.Logout()

		assert.Nil(t, s.User)
		assert.Empty(t, s.AccessToken)
		assert.Empty(t, s.RefreshToken)
		assert.False(t, s.IsAuthenticated())
		assert.False(t, s.IsAdmin())
	})
}

func TestSessionUpdateTokens(t *testing.T) {
	s := &Session{}
	s.SetAuth(SessionUser{ID: "u1", Role: RoleCustomer}, "access-1", "refresh-1")

	t.Run("Rotates Both When Both Given", func(t *testing.T) {
		s.UpdateTokens("access-2", "refresh-2")
		assert.Equal(t, "access-2", s.AccessToken)
		assert.Equal(t, "refresh-2", s.RefreshToken)
	})

	t.Run("Empty Refresh Keeps The Old One", func(t *testing.T) {
		s.UpdateTokens("access-3", "")
		assert.Equal(t, "access-3", s.AccessToken)
		assert.Equal(t, "refresh-2", s.RefreshToken)
	})
}

func TestSessionIsAdmin(t *testing.T) {
	t.Run("Admin Role Without User Never Counts", func(t *testing.T) {
		// A session can end up with fields cleared out of order only
		// through manual edits; IsAdmin must still hold.
		s := &Session{}
		assert.False(t, s.IsAdmin())
	})

	t.Run("Customer Is Not Admin", func(t *testing.T) {
		s := &Session{}
		s.SetAuth(SessionUser{ID: "u1", Role: RoleCustomer}, "access", "refresh")
		assert.False(t, s.IsAdmin())
	})
}
