package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

// GuestCartResponse mirrors CartResponse for guest rows.
type GuestCartResponse struct {
	Items []models.GuestCartItem `json:"items"`
	Count int                    `json:"count"`
	Total float64                `json:"total"`
}

func summarizeGuest(items []models.GuestCartItem) GuestCartResponse {
	resp := GuestCartResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []models.GuestCartItem{}
	}
	for _, item := range items {
		resp.Count += item.Quantity
		resp.Total += float64(item.Quantity) * item.UnitPrice
	}
	return resp
}

func findOrCreateGuestCart(db *gorm.DB, guestID string) (models.GuestCart, error) {
	var cart models.GuestCart
	err := db.Where("guest_id = ?", guestID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.GuestCart{GuestID: guestID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

func upsertGuestCartItem(db *gorm.DB, cartID uint, product models.Product, quantity int) (models.GuestCartItem, error) {
	item := models.GuestCartItem{
		CartID:        cartID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		ProductNameAR: product.NameAR,
		ProductImage:  product.ImageURL,
		UnitPrice:     product.Price,
		Quantity:      quantity,
		TotalPrice:    float64(quantity) * product.Price,
		AddedAt:       time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":    gorm.Expr("quantity + ?", quantity),
			"total_price": gorm.Expr("(quantity + ?) * unit_price", quantity),
			"added_at":    time.Now(),
		}),
	}).Create(&item).Error
	if err != nil {
		return models.GuestCartItem{}, err
	}

	err = db.Where("cart_id = ? AND product_id = ?", cartID, product.ID).First(&item).Error
	return item, err
}

// GET /guest/cart
func GetGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.GuestCart
		if err := db.Preload("Items").Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, summarizeGuest(nil))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		c.JSON(http.StatusOK, summarizeGuest(cart.Items))
	}
}

// POST /guest/cart/items
func AddGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, status, errMsg := fetchProduct(db, input.ProductID)
		if status != 0 {
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		cart, err := findOrCreateGuestCart(db, guestID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		item, err := upsertGuestCartItem(db, cart.CartID, product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to guest cart"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// PUT /guest/cart/items/:product_id
func SetGuestCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		productID, err := parseProductID(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		if input.Quantity <= 0 {
			deleteGuestCartItem(c, db, cart.CartID, productID)
			return
		}

		var item models.GuestCartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.TotalPrice = float64(input.Quantity) * item.UnitPrice
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update guest cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /guest/cart/items/:product_id
func DeleteGuestCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		productID, err := parseProductID(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Guest cart not found"})
			return
		}

		deleteGuestCartItem(c, db, cart.CartID, productID)
	}
}

func deleteGuestCartItem(c *gin.Context, db *gorm.DB, cartID uint, productID uint) {
	result := db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.GuestCartItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Guest cart item deleted"})
}

// DELETE /guest/cart
func ClearGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Query("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}

		var cart models.GuestCart
		if err := db.Where("guest_id = ?", guestID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guest cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear guest cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Guest cart cleared"})
	}
}
