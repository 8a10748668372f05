package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

// SeedCounters makes sure the vendor id sequence row exists. Seq stays
// wherever a previous run left it.
func SeedCounters(db *gorm.DB) error {
	counter := models.Counter{Name: models.VendorCounterName}
	return db.Where(models.Counter{Name: models.VendorCounterName}).
		FirstOrCreate(&counter).Error
}
