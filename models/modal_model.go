package models

import "time"

// Modal is the model/variant of a Brand (Brand -> Modal is the second
// level of the reference hierarchy, like Category -> SubCategory).
type Modal struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	BrandID   uint      `json:"brandId" gorm:"not null;index"`
	Brand     *Brand    `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	CreatedAt time.Time `json:"createdAt"`
}
