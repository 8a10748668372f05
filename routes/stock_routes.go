package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockController := controllers.NewStockController(db)

	api := app.Group(config.MAIN_ROUTES+"/stocks", middleware.AuthMiddleware)
	api.Post("/export", stockController.ExportStocks)
	api.Post("/", stockController.CreateStock)
	api.Get("/", stockController.GetStocks)
	api.Put("/", stockController.UpdateStock)
	api.Delete("/", stockController.DeleteStock)
}
