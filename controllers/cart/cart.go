package cartControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type QuantityInput struct {
	Quantity int `json:"quantity"` // zero or negative removes the item
}

// CartResponse carries the items plus the derived count and total. Both are
// recomputed from the rows on every request, never cached.
type CartResponse struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total float64           `json:"total"`
}

func summarize(items []models.CartItem) CartResponse {
	resp := CartResponse{Items: items}
	if resp.Items == nil {
		resp.Items = []models.CartItem{}
	}
	for _, item := range items {
		resp.Count += item.Quantity
		resp.Total += float64(item.Quantity) * item.UnitPrice
	}
	return resp
}

func findOrCreateCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// upsertCartItem adds quantity to the (cart, product) row, creating it on
// first add. The sum happens inside the SQL on the unique key, so two
// concurrent adds cannot race the existence check into a duplicate row or a
// lost update.
func upsertCartItem(db *gorm.DB, cartID uint, product models.Product, quantity int) (models.CartItem, error) {
	item := models.CartItem{
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
		return models.CartItem{}, err
	}

	err = db.Where("cart_id = ? AND product_id = ?", cartID, product.ID).First(&item).Error
	return item, err
}

func fetchProduct(db *gorm.DB, productID uint) (models.Product, int, string) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return product, http.StatusBadRequest, "Product does not exist"
		}
		return product, http.StatusInternalServerError, "Failed to validate product"
	}
	if !product.Available {
		return product, http.StatusBadRequest, "Product is not available"
	}
	return product, 0, ""
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, summarize(nil))
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		items, err := dropOrphanedItems(db, cart.Items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, summarize(items))
	}
}

// dropOrphanedItems filters out rows whose product no longer resolves.
func dropOrphanedItems(db *gorm.DB, items []models.CartItem) ([]models.CartItem, error) {
	if len(items) == 0 {
		return items, nil
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	var existing []uint
	if err := db.Model(&models.Product{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, err
	}
	alive := make(map[uint]bool, len(existing))
	for _, id := range existing {
		alive[id] = true
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if alive[item.ProductID] {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// POST /user/cart/items
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

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

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		item, err := upsertCartItem(db, cart.CartID, product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// PUT /user/cart/items/:product_id
func SetCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

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

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		// Quantity zero or below means remove.
		if input.Quantity <= 0 {
			deleteCartItem(c, db, cart.CartID, productID)
			return
		}

		var item models.CartItem
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /user/cart/items/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		productID, err := parseProductID(c.Param("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User cart not found"})
			return
		}

		deleteCartItem(c, db, cart.CartID, productID)
	}
}

func deleteCartItem(c *gin.Context, db *gorm.DB, cartID uint, productID uint) {
	result := db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.CartItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func parseProductID(param string) (uint, error) {
	id, err := strconv.ParseUint(param, 10, 64)
	return uint(id), err
}
