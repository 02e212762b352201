package routes

import (
	"mobile-order/config"
	"mobile-order/controllers"
	"mobile-order/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)

	// Table clients place and track orders without logging in.
	api := app.Group(config.MAIN_ROUTES + "/orders")
	api.Post("/", orderController.CreateOrder)
	api.Get("/", orderController.GetAllOrders)
	api.Put("/:id/status", orderController.UpdateOrderStatus)
	api.Put("/:id/payment", orderController.UpdatePaymentStatus)

	api.Delete("/", middleware.AuthMiddleware, middleware.RequireAdmin, orderController.ClearOrdersByTable)
}
