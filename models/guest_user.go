package models

import "time"

// GuestUser records a guest identity issued by POST /auth/guest.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
