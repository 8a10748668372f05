package models

import "time"

const (
	CategoryTypeConsumable    = "consumable"
	CategoryTypeNonConsumable = "non-consumable"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Type      string    `json:"type" gorm:"not null"` // consumable / non-consumable
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
