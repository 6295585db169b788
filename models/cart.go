package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                                 // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_cart_product" json:"product_id"` // Exactly one row per (cart, product)
	ProductName   string    `json:"product_name"`
	ProductNameAR string    `json:"product_name_ar"`
	ProductImage  string    `json:"product_image"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"` // Always quantity * unit_price, recomputed on every mutation
	AddedAt       time.Time `json:"added_at"`
}
