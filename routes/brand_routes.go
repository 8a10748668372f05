package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBrandRoutes(app *fiber.App, db *gorm.DB) {
	brandController := controllers.NewBrandController(db)

	api := app.Group(config.MAIN_ROUTES+"/brands", middleware.AuthMiddleware)
	api.Post("/", brandController.CreateBrand)
	api.Get("/", brandController.GetAllBrands)
	api.Put("/", brandController.UpdateBrand)
	api.Delete("/", brandController.DeleteBrand)
}
