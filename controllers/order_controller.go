package controllers

import (
	"errors"
	"strconv"
	"time"

	"mobile-order/controllers/idgen"
	"mobile-order/models"
	"mobile-order/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/rand"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(DB *gorm.DB) *OrderController {
	return &OrderController{DB: DB}
}

const referenceCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// refRand is seeded per process so reference codes do not repeat the same
// sequence after every restart.
var refRand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

// newReference makes a short human-readable order code for receipts.
func newReference() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = referenceCharset[refRand.Intn(len(referenceCharset))]
	}
	return string(code)
}

// CreateOrder turns a submitted cart into a pending, unpaid order. The total
// is recomputed server side.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input struct {
		TableNumber int `json:"tableNumber"`
		Items       []struct {
			MenuItemID uint   `json:"menuItemId"`
			Name       string `json:"name" validate:"required"`
			Price      int    `json:"price" validate:"gte=0"`
			Quantity   int    `json:"quantity" validate:"gt=0"`
			Image      string `json:"image"`
		} `json:"items" validate:"required,min=1,dive"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tableNumber := input.TableNumber
	if tableNumber == 0 {
		tableNumber = 1
	}

	order := models.Order{
		ID:            types.SnowflakeID(idgen.GenerateID()),
		Reference:     newReference(),
		Status:        models.OrderStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
		TableNumber:   tableNumber,
	}

	total := 0
	for _, item := range input.Items {
		total += item.Price * item.Quantity
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   item.Quantity,
			Image:      item.Image,
		})
	}
	order.Total = total

	if err := c.DB.Create(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

// GetAllOrders lists orders newest first, optionally filtered by table.
func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Items").Order("created_at DESC")
	if table := ctx.Query("table"); table != "" {
		tableNumber, err := strconv.Atoi(table)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid table number"})
		}
		query = query.Where("table_number = ?", tableNumber)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": orders})
}

func (c *OrderController) UpdateOrderStatus(ctx *fiber.Ctx) error {
	return c.updateOrderField(ctx, "status", func(input string) bool {
		return input == models.OrderStatusPending || input == models.OrderStatusCompleted
	})
}

func (c *OrderController) UpdatePaymentStatus(ctx *fiber.Ctx) error {
	return c.updateOrderField(ctx, "payment_status", func(input string) bool {
		return input == models.PaymentStatusUnpaid || input == models.PaymentStatusPaid
	})
}

func (c *OrderController) updateOrderField(ctx *fiber.Ctx, column string, valid func(string) bool) error {
	rawID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	id := types.SnowflakeID(rawID)

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !valid(input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	var order models.Order
	if err := c.DB.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&order).Update(column, input.Status).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order updated successfully", "data": order})
}

// ClearOrdersByTable removes every order of one table after payment settles.
func (c *OrderController) ClearOrdersByTable(ctx *fiber.Ctx) error {
	table := ctx.Query("table")
	if table == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Table number is required"})
	}
	tableNumber, err := strconv.Atoi(table)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid table number"})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("table_number = ?", tableNumber).Find(&orders).Error; err != nil {
			return err
		}
		for _, order := range orders {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("table_number = ?", tableNumber).Delete(&models.Order{}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Orders cleared successfully"})
}
