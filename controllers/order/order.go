package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required"`
	Notes           string `json:"notes"`
}

type DirectOrderRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrProductUnavailable = errors.New("product is not available")
)

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// deductStock decrements stock only when enough remains. The guard lives in
// the UPDATE itself, so concurrent orders cannot oversell between a check and
// a write.
func deductStock(tx *gorm.DB, productID uint, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// pruneOrphanedItems deletes cart rows whose product no longer resolves and
// returns the rows that survive.
func pruneOrphanedItems(tx *gorm.DB, cartID uint, items []models.CartItem) ([]models.CartItem, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var existing []uint
	if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	alive := make(map[uint]bool, len(existing))
	for _, id := range existing {
		alive[id] = true
	}

	kept := make([]models.CartItem, 0, len(items))
	orphaned := make([]uint, 0)
	for _, item := range items {
		if alive[item.ProductID] {
			kept = append(kept, item)
		} else {
			orphaned = append(orphaned, item.ProductID)
		}
	}
	if len(orphaned) > 0 {
		if err := tx.Where("cart_id = ? AND product_id IN ?", cartID, orphaned).Delete(&models.CartItem{}).Error; err != nil {
			return nil, err
		}
	}
	return kept, nil
}

// -------- Core Logic --------

// PlaceOrder turns the user's cart into an order. Order row, order items,
// stock deduction and cart clearing commit or roll back together, so a partial
// failure never leaves an orphaned order.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		// Rows whose product was retired would fail the stock guard while
		// staying invisible on GET /user/cart; drop them here instead of
		// blocking the checkout on them.
		items, err := pruneOrphanedItems(tx, cart.CartID, cart.Items)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(items))

		for _, item := range items {
			if err := deductStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}

			lineTotal := float64(item.Quantity) * item.UnitPrice
			total += lineTotal

			orderItems = append(orderItems, models.OrderItem{
				ProductID:     item.ProductID,
				ProductName:   item.ProductName,
				ProductNameAR: item.ProductNameAR,
				ProductImage:  item.ProductImage,
				UnitPrice:     item.UnitPrice,
				Quantity:      item.Quantity,
				TotalPrice:    lineTotal,
			})
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			Items:           orderItems,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			TotalAmount:     total,
			ShippingAddress: req.ShippingAddress,
			Notes:           req.Notes,
			CreatedAt:       time.Now(),
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})

	return order, err
}

// DirectOrder places a single-product order without touching the cart.
func DirectOrder(db *gorm.DB, userID string, req DirectOrderRequest) (models.Order, error) {
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return err
		}
		if !product.Available {
			return ErrProductUnavailable
		}

		if err := deductStock(tx, product.ID, req.Quantity); err != nil {
			return err
		}

		totalPrice := float64(req.Quantity) * product.Price
		order = models.Order{
			OrderRef: generateOrderRef(),
			UserID:   userID,
			Items: []models.OrderItem{{
				ProductID:     product.ID,
				ProductName:   product.Name,
				ProductNameAR: product.NameAR,
				ProductImage:  product.ImageURL,
				UnitPrice:     product.Price,
				Quantity:      req.Quantity,
				TotalPrice:    totalPrice,
			}},
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			TotalAmount:     totalPrice,
			ShippingAddress: req.ShippingAddress,
			Notes:           req.Notes,
			CreatedAt:       time.Now(),
		}

		return tx.Create(&order).Error
	})

	return order, err
}

func orderErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrProductUnavailable),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// -------- Handlers --------

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(req.ShippingAddress) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipping_address is required"})
			return
		}

		order, err := PlaceOrder(db, userID, req)
		if err != nil {
			c.JSON(orderErrorStatus(err), gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// POST /user/orders/direct
func DirectOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req DirectOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Validate before any write.
		if strings.TrimSpace(req.ShippingAddress) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipping_address is required"})
			return
		}

		order, err := DirectOrder(db, userID, req)
		if err != nil {
			status := orderErrorStatus(err)
			msg := err.Error()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				msg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID — accepts the numeric id or the order_ref.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		// Numeric values hit the primary key; anything else is an order_ref.
		// The integer id column cannot be compared against a ref string.
		query := db.Preload("Items").Where("user_id = ?", userID)
		if _, numErr := strconv.Atoi(id); numErr == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("order_ref = ?", id)
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// -------- Admin handlers (API-key group) --------

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// PUT /admin/orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res := db.Model(&models.Order{}).Where("id = ?", orderID).Update("payment_status", newStatus)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
