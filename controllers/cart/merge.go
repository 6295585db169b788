package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hafez-365/damanhourcoffeestore/models"
)

type MergeCartInput struct {
	GuestID string `json:"guest_id" binding:"required"`
}

// POST /user/cart/merge
//
// Signing in never merges on its own; the client calls this once after login
// when it wants the guest cart carried over.
func MergeGuestCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input MergeCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		merged, err := MergeGuestCartIntoUserCart(db, input.GuestID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to merge guest cart"})
			return
		}

		status := "guest-cart-empty"
		if merged {
			status = "merged"
		}
		c.JSON(http.StatusOK, gin.H{"merge_status": status})
	}
}

// MergeGuestCartIntoUserCart folds a guest cart into the user's cart, summing
// quantities per product and recomputing each row's total. The guest cart is
// deleted on success; everything runs in one transaction. Returns false when
// there was nothing to merge.
func MergeGuestCartIntoUserCart(db *gorm.DB, guestID, userID string) (bool, error) {
	var merged bool

	err := db.Transaction(func(tx *gorm.DB) error {
		var guestCart models.GuestCart
		if err := tx.Preload("Items").Where("guest_id = ?", guestID).First(&guestCart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // nothing to merge
			}
			return err
		}

		if len(guestCart.Items) == 0 {
			return tx.Delete(&guestCart).Error
		}

		userCart, err := findOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		for _, guestItem := range guestCart.Items {
			var userItem models.CartItem
			lookupErr := tx.Where(
				"cart_id = ? AND product_id = ?",
				userCart.CartID,
				guestItem.ProductID,
			).First(&userItem).Error

			switch {
			case lookupErr == nil:
				userItem.Quantity += guestItem.Quantity
				userItem.TotalPrice = float64(userItem.Quantity) * userItem.UnitPrice
				userItem.AddedAt = time.Now()
				if err := tx.Save(&userItem).Error; err != nil {
					return err
				}

			case errors.Is(lookupErr, gorm.ErrRecordNotFound):
				newItem := models.CartItem{
					CartID:        userCart.CartID,
					ProductID:     guestItem.ProductID,
					ProductName:   guestItem.ProductName,
					ProductNameAR: guestItem.ProductNameAR,
					ProductImage:  guestItem.ProductImage,
					UnitPrice:     guestItem.UnitPrice,
					Quantity:      guestItem.Quantity,
					TotalPrice:    float64(guestItem.Quantity) * guestItem.UnitPrice,
					AddedAt:       time.Now(),
				}
				if err := tx.Create(&newItem).Error; err != nil {
					return err
				}

			default:
				return lookupErr
			}
		}

		if err := tx.Where("cart_id = ?", guestCart.CartID).Delete(&models.GuestCartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&guestCart).Error; err != nil {
			return err
		}

		merged = true
		return nil
	})

	return merged, err
}
