package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/categories", middleware.AuthMiddleware)
	api.Post("/", categoryController.CreateCategory)
	api.Get("/", categoryController.GetAllCategories)
	api.Put("/", categoryController.UpdateCategory)
	api.Delete("/", categoryController.DeleteCategory)
}
