package main

import (
	"fmt"
	"log"

	"mobile-order/config"
	"mobile-order/controllers/idgen"
	"mobile-order/database"
	"mobile-order/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := database.OpenDatabaseConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupCategoryRoutes(app, db)
	routes.SetupMenuRoutes(app, db)
	routes.SetupFeaturedRoutes(app, db)
	routes.SetupThemeRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupImportRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server listening on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
