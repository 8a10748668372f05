package database

import (
	"inventory-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.SubCategory{},
		&models.Brand{},
		&models.Modal{},
		&models.MOP{},
		&models.Counter{},
		&models.Vendor{},
		&models.User{},
		&models.Product{},
	)
}
