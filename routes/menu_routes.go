package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)

	api := app.Group(config.MAIN_ROUTES + "/menu-items")
	api.Get("/", menuController.GetAllMenuItems)
	api.Get("/:id", menuController.GetMenuItemByID)

	admin := api.Group("", middleware.AuthMiddleware, middleware.RequireAdmin)
	admin.Post("/", menuController.CreateMenuItem)
	admin.Put("/reorder", menuController.ReorderMenuItems)
	admin.Put("/:id", menuController.UpdateMenuItem)
	admin.Delete("/:id", menuController.DeleteMenuItem)
}
