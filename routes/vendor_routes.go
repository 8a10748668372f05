package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVendorRoutes(app *fiber.App, db *gorm.DB) {
	vendorController := controllers.NewVendorController(db)

	api := app.Group(config.MAIN_ROUTES+"/vendors", middleware.AuthMiddleware)
	api.Post("/", vendorController.CreateVendor)
	api.Get("/", vendorController.GetAllVendors)
	api.Put("/", vendorController.UpdateVendor)
	api.Delete("/", vendorController.DeleteVendor)
}
