package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/hafez-365/damanhourcoffeestore/controllers/order"
	"github.com/hafez-365/damanhourcoffeestore/middleware"
)

// SetupAdminRoutes registers the API-key-protected order management endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.GET("/orders/feed", orderControllers.OrderFeedHandler)
		adminGroup.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.PUT("/orders/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(db))
	}
}
