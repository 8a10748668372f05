package models

import "time"

type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminID   string    `json:"adminId" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
