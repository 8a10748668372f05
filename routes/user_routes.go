package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"
	"inventory-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	api.Post("/", userController.CreateUser)
	api.Get("/", userController.GetAllUsers)
	api.Put("/", userController.UpdateUser)
	api.Delete("/", userController.DeleteUser)
}
