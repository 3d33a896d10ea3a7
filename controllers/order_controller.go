package controllers

import (
	"net/http"

	"techmart-backend/common/logger"
	"techmart-backend/middleware"
	"techmart-backend/models"
	"techmart-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderController struct {
	orders *repository.OrderRepository
}

func NewOrderController(orders *repository.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

// GetOrders lists the caller's own orders.
func (oc *OrderController) GetOrders(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	orders, err := oc.orders.ListByUser(c.Request.Context(), uid)
	if err != nil {
		logger.Error(c, "failed to list orders", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID fetches a single order; customers can only see their
// own, admins can see any.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	oid, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := oc.orders.FindByID(c.Request.Context(), oid)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		logger.Error(c, "failed to fetch order", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}

	role, _ := c.Get(middleware.RoleContextKey)
	if order.UserID.String() != userID && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListAllOrders is the admin view over every order.
func (oc *OrderController) ListAllOrders(c *gin.Context) {
	orders, err := oc.orders.ListAll(c.Request.Context())
	if err != nil {
		logger.Error(c, "failed to list all orders", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
