package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/hafez-365/damanhourcoffeestore/controllers/cart"
	orderControllers "github.com/hafez-365/damanhourcoffeestore/controllers/order"
	userControllers "github.com/hafez-365/damanhourcoffeestore/controllers/user"
	"github.com/hafez-365/damanhourcoffeestore/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))
			cartGroup.POST("/items", cartControllers.AddCartItem(db))
			cartGroup.PUT("/items/:product_id", cartControllers.SetCartItemQuantity(db))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))
			cartGroup.POST("/merge", cartControllers.MergeGuestCart(db))
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderGroup.POST("/", orderControllers.PlaceOrderHandler(db))
			orderGroup.POST("/direct", orderControllers.DirectOrderHandler(db))
		}

		// ──────────────── Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("/", userControllers.GetAddresses(db))
			addressGroup.POST("/", userControllers.CreateAddress(db))
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}

		// ──────────────── Favorites ────────────────
		favoriteGroup := userGroup.Group("/favorites")
		{
			favoriteGroup.GET("/", userControllers.GetFavorites(db))
			favoriteGroup.POST("/", userControllers.AddFavorite(db))
			favoriteGroup.DELETE("/:product_id", userControllers.RemoveFavorite(db))
		}
	}
}
