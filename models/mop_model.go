package models

import "time"

// MOP is the mode of purchase (cash, credit, tender, ...).
type MOP struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (MOP) TableName() string {
	return "mops"
}
