package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFeaturedRoutes(app *fiber.App, db *gorm.DB) {
	featuredController := controllers.NewFeaturedController(db)

	api := app.Group(config.MAIN_ROUTES + "/featured")
	api.Get("/", featuredController.GetFeaturedItems)
	api.Put("/", middleware.AuthMiddleware, middleware.RequireAdmin, featuredController.SetFeaturedItem)
}
