package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupModalRoutes(app *fiber.App, db *gorm.DB) {
	modalController := controllers.NewModalController(db)

	api := app.Group(config.MAIN_ROUTES+"/modals", middleware.AuthMiddleware)
	api.Post("/", modalController.CreateModal)
	api.Get("/", modalController.GetAllModals)
	api.Put("/", modalController.UpdateModal)
	api.Delete("/", modalController.DeleteModal)
}
