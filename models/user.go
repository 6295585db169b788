package models

import "time"

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone"`
	AvatarURL    string     `json:"avatar_url"`
	Role         string     `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Cart         Cart       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders       []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders"`
	Addresses    []Address  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	Favorites    []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Address is a saved shipping address in the user's address book.
type Address struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	Title       string    `gorm:"not null" json:"title"`
	Governorate string    `gorm:"not null" json:"governorate"`
	City        string    `gorm:"not null" json:"city"`
	Street      string    `gorm:"not null" json:"street"`
	PostalCode  string    `json:"postal_code"`
	Phone       string    `json:"phone"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
