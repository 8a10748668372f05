package main

import (
	"fmt"
	"log"

	"inventory-app/config"
	"inventory-app/controllers/idgen"
	"inventory-app/database"
	"inventory-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}
	if err := database.SeedCounters(db); err != nil {
		log.Fatalf("Failed to seed counters: %v", err)
	}

	idgen.Init()

	app := fiber.New()
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupSubCategoryRoutes(app, db)
	routes.SetupBrandRoutes(app, db)
	routes.SetupModalRoutes(app, db)
	routes.SetupMopRoutes(app, db)
	routes.SetupVendorRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupStockRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
