package controllers

import (
	"errors"
	"net/http"

	"techmart-backend/common/logger"
	"techmart-backend/middleware"
	"techmart-backend/models"
	"techmart-backend/store"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlists *store.WishlistStore
	carts     *store.CartStore
}

func NewWishlistController(wishlists *store.WishlistStore, carts *store.CartStore) *WishlistController {
	return &WishlistController{wishlists: wishlists, carts: carts}
}

type addWishlistItemRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Image      string `json:"image"`
	Slug       string `json:"slug"`
}

// GetWishlist returns the user's saved products.
func (wc *WishlistController) GetWishlist(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	wl, err := wc.wishlists.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error(c, "failed to get wishlist", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get wishlist"})
		return
	}

	c.JSON(http.StatusOK, wl)
}

// AddItem saves a product; duplicates are silently ignored.
func (wc *WishlistController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	wl, err := wc.wishlists.Add(c.Request.Context(), userID, models.WishlistItem{
		ProductID:  req.ProductID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Image:      req.Image,
		Slug:       req.Slug,
	})
	if err != nil {
		logger.Error(c, "failed to add wishlist item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save wishlist"})
		return
	}

	c.JSON(http.StatusOK, wl)
}

// RemoveItem deletes a saved product; absent products are a no-op.
func (wc *WishlistController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	wl, err := wc.wishlists.Remove(c.Request.Context(), userID, c.Param("product_id"))
	if err != nil {
		logger.Error(c, "failed to remove wishlist item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, wl)
}

// MoveToCart moves a saved product into the cart in one operation.
func (wc *WishlistController) MoveToCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	wl, err := wc.wishlists.MoveToCart(c.Request.Context(), userID, c.Param("product_id"), wc.carts)
	if err != nil {
		if errors.Is(err, store.ErrNotInWishlist) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not in wishlist"})
			return
		}
		logger.Error(c, "failed to move wishlist item to cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move item to cart"})
		return
	}

	c.JSON(http.StatusOK, wl)
}
