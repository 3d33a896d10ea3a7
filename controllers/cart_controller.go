package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"techmart-backend/common/logger"
	"techmart-backend/middleware"
	"techmart-backend/models"
	"techmart-backend/services/pricing"
	"techmart-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderWriter persists completed checkouts.
type OrderWriter interface {
	Create(ctx context.Context, order *models.Order) error
}

// CheckoutPublisher emits the checkout event for downstream consumers.
type CheckoutPublisher interface {
	SendCheckoutEvent(ctx context.Context, event models.CheckoutEvent) error
}

type CartController struct {
	carts    *store.CartStore
	orders   OrderWriter
	producer CheckoutPublisher
}

func NewCartController(carts *store.CartStore, orders OrderWriter, producer CheckoutPublisher) *CartController {
	return &CartController{carts: carts, orders: orders, producer: producer}
}

type addCartItemRequest struct {
	ProductID  string `json:"product_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"min=0"`
	Image      string `json:"image"`
	Slug       string `json:"slug"`
	Quantity   int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=10"`
}

// cartResponse decorates the cart with its derived totals.
func cartResponse(cart *models.Cart) gin.H {
	quote := pricing.QuoteFor(cart.SubtotalCents())
	return gin.H{
		"cart":           cart,
		"subtotal_cents": quote.SubtotalCents,
		"shipping_cents": quote.ShippingCents,
		"total_cents":    quote.TotalCents,
	}
}

// GetCart returns the current cart with derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cart, err := cc.carts.Get(c.Request.Context(), userID)
	if err != nil {
		logger.Error(c, "failed to get cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// AddItem adds or merges an item into the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cart, err := cc.carts.Add(c.Request.Context(), userID, models.CartItem{
		ProductID:  req.ProductID,
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Image:      req.Image,
		Slug:       req.Slug,
		Quantity:   req.Quantity,
	})
	if err != nil {
		logger.Error(c, "failed to add cart item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// UpdateQuantity sets a line's quantity. The store does not clamp, so
// the bound selector range (1-10) is enforced here at the edge.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	productID := c.Param("product_id")

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be between 1 and 10"})
		return
	}

	cart, found, err := cc.carts.SetQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		logger.Error(c, "failed to update quantity", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not in cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveItem removes a specific item from the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	productID := c.Param("product_id")

	cart, err := cc.carts.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		logger.Error(c, "failed to remove cart item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart removes all items from the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := cc.carts.Clear(c.Request.Context(), userID); err != nil {
		logger.Error(c, "failed to clear cart", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=credit_card pix boleto"`
}

// Checkout simulates a payment: it derives the totals, records the
// order as paid, publishes the checkout event and clears the cart.
func (cc *CartController) Checkout(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
		return
	}

	ctx := c.Request.Context()
	cart, err := cc.carts.Get(ctx, userID)
	if err != nil {
		logger.Error(c, "failed to load cart for checkout", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	quote := pricing.QuoteFor(cart.SubtotalCents())
	now := time.Now()
	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   fmt.Sprintf("ORD-%s", uuid.NewString()[:8]),
		UserID:        uid,
		SubtotalCents: quote.SubtotalCents,
		ShippingCents: quote.ShippingCents,
		TotalCents:    quote.TotalCents,
		Status:        models.OrderStatusPaid,
		PaymentMethod: req.PaymentMethod,
		CompletedAt:   &now,
	}
	for _, item := range cart.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			PriceCents: item.PriceCents,
		})
	}

	if err := cc.orders.Create(ctx, order); err != nil {
		logger.Error(c, "failed to create order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	// Downstream consumers (notifications, analytics) get the event;
	// a broker hiccup must not fail the checkout itself.
	if cc.producer != nil {
		event := models.CheckoutEvent{
			OrderID:     order.ID.String(),
			OrderNumber: order.OrderNumber,
			UserID:      userID,
			TotalCents:  order.TotalCents,
			Items:       cart.Items,
			RequestedAt: now,
		}
		if err := cc.producer.SendCheckoutEvent(ctx, event); err != nil {
			logger.Warn(c, "checkout event not published")
		}
	}

	if err := cc.carts.Clear(ctx, userID); err != nil {
		logger.Error(c, "failed to clear cart after checkout", err)
	}

	c.JSON(http.StatusCreated, gin.H{"order": order})
}
