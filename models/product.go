package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string         `json:"name"`
	NameAR             string         `gorm:"not null" json:"name_ar"` // Arabic is the storefront's primary language
	Description        string         `json:"description"`
	DescriptionAR      string         `json:"description_ar"`
	Price              float64        `gorm:"not null" json:"price"`
	DiscountPercentage float64        `json:"discount_percentage"`
	ImageURL           string         `json:"image_url"`
	Rating             float64        `json:"rating"`
	StockQuantity      int            `json:"stock_quantity"`
	Available          bool           `gorm:"default:true" json:"available"`
	Featured           bool           `json:"featured"`
	Categories         []Category     `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
