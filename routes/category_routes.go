package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	categoryController := controllers.NewCategoryController(db)

	api := app.Group(config.MAIN_ROUTES + "/categories")
	api.Get("/", categoryController.GetAllCategories)

	admin := api.Group("", middleware.AuthMiddleware, middleware.RequireAdmin)
	admin.Post("/main", categoryController.CreateMainCategory)
	admin.Post("/sub", categoryController.CreateSubCategory)
	admin.Put("/reorder", categoryController.ReorderCategories)
	admin.Put("/main/:id", categoryController.UpdateMainCategory)
	admin.Put("/sub/:id", categoryController.UpdateSubCategory)
	admin.Delete("/main/:id", categoryController.DeleteMainCategory)
	admin.Delete("/sub/:id", categoryController.DeleteSubCategory)
}
