package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMopRoutes(app *fiber.App, db *gorm.DB) {
	mopController := controllers.NewMopController(db)

	api := app.Group(config.MAIN_ROUTES+"/mops", middleware.AuthMiddleware)
	api.Post("/", mopController.CreateMop)
	api.Get("/", mopController.GetAllMops)
	api.Put("/", mopController.UpdateMop)
	api.Delete("/", mopController.DeleteMop)
}
