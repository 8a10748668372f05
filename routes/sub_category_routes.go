package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSubCategoryRoutes(app *fiber.App, db *gorm.DB) {
	subCategoryController := controllers.NewSubCategoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/sub-categories", middleware.AuthMiddleware)
	api.Post("/", subCategoryController.CreateSubCategory)
	api.Get("/", subCategoryController.GetSubCategories)
	api.Put("/", subCategoryController.UpdateSubCategory)
	api.Delete("/", subCategoryController.DeleteSubCategory)
}
