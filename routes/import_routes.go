package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupImportRoutes(app *fiber.App, db *gorm.DB) {
	importController := controllers.NewImportController(db)

	api := app.Group(config.MAIN_ROUTES+"/import", middleware.AuthMiddleware, middleware.RequireAdmin)
	api.Post("/csv", importController.ImportMenu)
}
