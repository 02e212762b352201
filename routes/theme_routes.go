package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupThemeRoutes(app *fiber.App, db *gorm.DB) {
	themeController := controllers.NewThemeController(db)

	api := app.Group(config.MAIN_ROUTES + "/theme")
	api.Get("/", themeController.GetTheme)
	api.Put("/", middleware.AuthMiddleware, middleware.RequireAdmin, themeController.SetTheme)
}
