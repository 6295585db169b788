package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/hafez-365/damanhourcoffeestore/controllers/cart"
)

// SetupGuestRoutes registers the guest cart endpoints. Guests identify
// themselves with the guest_id issued by POST /auth/guest.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB) {
	guestGroup := r.Group("/guest")
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetGuestCart(db))
			cartGroup.POST("/items", cartControllers.AddGuestCartItem(db))
			cartGroup.PUT("/items/:product_id", cartControllers.SetGuestCartItemQuantity(db))
			cartGroup.DELETE("/items/:product_id", cartControllers.DeleteGuestCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearGuestCart(db))
		}
	}
}
