package models

import "time"

// User is a stock holder, not a login account (see Admin).
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	MobileNumber string    `json:"mobileNumber" gorm:"not null"`
	Address      string    `json:"address" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
}
