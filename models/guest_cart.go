package models

import "time"

// GuestCart holds the cart of an unauthenticated visitor, keyed by an issued guest id.
type GuestCart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	GuestID   string          `gorm:"uniqueIndex" json:"guest_id"` // Enforces ONE cart per guest
	Items     []GuestCartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type GuestCartItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CartID        uint      `gorm:"uniqueIndex:idx_guest_cart_product" json:"cart_id"`
	ProductID     uint      `gorm:"uniqueIndex:idx_guest_cart_product" json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductNameAR string    `json:"product_name_ar"`
	ProductImage  string    `json:"product_image"`
	UnitPrice     float64   `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	TotalPrice    float64   `json:"total_price"`
	AddedAt       time.Time `json:"added_at"`
}
