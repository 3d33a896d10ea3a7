package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"techmart-backend/common/logger"
	"techmart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wishlistRouter(wc *WishlistController, userID string) *gin.Engine {
	router := gin.New()
	group := router.Group("/wishlist", asUser(userID))
	group.GET("", wc.GetWishlist)
	group.POST("/items", wc.AddItem)
	group.DELETE("/items/:product_id", wc.RemoveItem)
	group.POST("/items/:product_id/move-to-cart", wc.MoveToCart)
	return router
}

func TestWishlistEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Initialize("test")
	userID := uuid.NewString()

	t.Run("Add Is Idempotent", func(t *testing.T) {
		region := newTestRegion()
		wc := NewWishlistController(store.NewWishlistStore(region), store.NewCartStore(region))
		router := wishlistRouter(wc, userID)

		payload := `{"product_id": "p1", "name": "Fone", "price_cents": 19990}`
		require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/wishlist/items", payload).Code)

		recorder := doJSON(router, http.MethodPost, "/wishlist/items", payload)
		assert.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(router, http.MethodGet, "/wishlist", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 1, countItems(t, recorder.Body.Bytes()))
	})

	t.Run("Missing Product ID - 400", func(t *testing.T) {
		region := newTestRegion()
		wc := NewWishlistController(store.NewWishlistStore(region), store.NewCartStore(region))
		router := wishlistRouter(wc, userID)

		recorder := doJSON(router, http.MethodPost, "/wishlist/items", `{"name": "Fone"}`)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Move To Cart", func(t *testing.T) {
		region := newTestRegion()
		carts := store.NewCartStore(region)
		wc := NewWishlistController(store.NewWishlistStore(region), carts)
		router := wishlistRouter(wc, userID)

		payload := `{"product_id": "p1", "name": "Fone", "price_cents": 19990}`
		require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/wishlist/items", payload).Code)

		recorder := doJSON(router, http.MethodPost, "/wishlist/items/p1/move-to-cart", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, 0, countItems(t, recorder.Body.Bytes()))

		cart, err := carts.Get(context.Background(), userID)
		assert.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("Move Absent Product - 404", func(t *testing.T) {
		region := newTestRegion()
		wc := NewWishlistController(store.NewWishlistStore(region), store.NewCartStore(region))
		router := wishlistRouter(wc, userID)

		recorder := doJSON(router, http.MethodPost, "/wishlist/items/missing/move-to-cart", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "product not in wishlist")
	})
}

func countItems(t *testing.T, body []byte) int {
	t.Helper()
	var wl struct {
		Items []struct{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(body, &wl))
	return len(wl.Items)
}
