package routes

import (
	"inventory-app/config"
	"inventory-app/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Get("/verify", authController.Verify)
	api.Post("/logout", authController.Logout)
	api.Get("/logout", authController.Logout)
}
