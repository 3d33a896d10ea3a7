package routes

import (
	"techmart-backend/controllers"
	"techmart-backend/middleware"
	"techmart-backend/services/auth"
	"techmart-backend/services/ratelimit"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	AI       *controllers.AIController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
	Auth     *controllers.AuthController
	Product  *controllers.ProductController
	Category *controllers.CategoryController
	Order    *controllers.OrderController
}

// Register mounts every route group on the engine.
func Register(r *gin.Engine, ctrl Controllers, tokens *auth.TokenService, chatLimiter *ratelimit.Limiter) {
	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireAdmin()

	// AI proxy. The customer chat is gated by the fixed-window
	// limiter; the admin assistant is not (it sits behind the
	// dashboard, not the public widget).
	aiGroup := r.Group("/ai")
	{
		aiGroup.POST("/customer-chat", middleware.ChatRateLimit(chatLimiter), ctrl.AI.CustomerChat)
		aiGroup.POST("/admin-assistant", ctrl.AI.AdminAssistant)
	}

	authGroup := r.Group("/auth")
	authGroup.Use(middleware.LoginRateLimit())
	{
		authGroup.POST("/login", ctrl.Auth.Login)
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/refresh", ctrl.Auth.Refresh)
		authGroup.POST("/logout", ctrl.Auth.Logout)
		authGroup.GET("/session", ctrl.Auth.GetSession)
	}

	cartGroup := r.Group("/cart")
	cartGroup.Use(authRequired)
	{
		cartGroup.GET("", ctrl.Cart.GetCart)
		cartGroup.POST("/items", ctrl.Cart.AddItem)
		cartGroup.PATCH("/items/:product_id", ctrl.Cart.UpdateQuantity)
		cartGroup.DELETE("/items/:product_id", ctrl.Cart.RemoveItem)
		cartGroup.DELETE("", ctrl.Cart.ClearCart)
		cartGroup.POST("/checkout", ctrl.Cart.Checkout)
	}

	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.Use(authRequired)
	{
		wishlistGroup.GET("", ctrl.Wishlist.GetWishlist)
		wishlistGroup.POST("/items", ctrl.Wishlist.AddItem)
		wishlistGroup.DELETE("/items/:product_id", ctrl.Wishlist.RemoveItem)
		wishlistGroup.POST("/items/:product_id/move-to-cart", ctrl.Wishlist.MoveToCart)
	}

	productGroup := r.Group("/products")
	{
		productGroup.GET("", ctrl.Product.GetProducts)
		productGroup.GET("/:id", ctrl.Product.GetProductByID)
		productGroup.POST("", authRequired, adminOnly, ctrl.Product.CreateProduct)
		productGroup.PUT("/:id", authRequired, adminOnly, ctrl.Product.UpdateProduct)
		productGroup.DELETE("/:id", authRequired, adminOnly, ctrl.Product.DeleteProduct)
	}

	categoryGroup := r.Group("/categories")
	{
		categoryGroup.GET("", ctrl.Category.GetCategories)
		categoryGroup.GET("/:id", ctrl.Category.GetCategoryByID)
		categoryGroup.POST("", authRequired, adminOnly, ctrl.Category.CreateCategory)
		categoryGroup.PUT("/:id", authRequired, adminOnly, ctrl.Category.UpdateCategory)
		categoryGroup.DELETE("/:id", authRequired, adminOnly, ctrl.Category.DeleteCategory)
	}

	orderGroup := r.Group("/orders")
	orderGroup.Use(authRequired)
	{
		orderGroup.GET("", ctrl.Order.GetOrders)
		orderGroup.GET("/:id", ctrl.Order.GetOrderByID)
		orderGroup.GET("/all", adminOnly, ctrl.Order.ListAllOrders)
	}
}
