package controllers

import (
	"mobile-order/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FeaturedController struct {
	DB *gorm.DB
}

func NewFeaturedController(DB *gorm.DB) *FeaturedController {
	return &FeaturedController{DB: DB}
}

// GetFeaturedItems returns the slot map. Every slot is present, empty slots
// map to null.
func (c *FeaturedController) GetFeaturedItems(ctx *fiber.Ctx) error {
	var rows []models.FeaturedItem
	if err := c.DB.Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	featured := make(map[string]*string, len(models.FeaturedSlots))
	for _, slot := range models.FeaturedSlots {
		featured[slot] = nil
	}
	for _, row := range rows {
		if models.IsFeaturedSlot(row.Type) {
			featured[row.Type] = row.ItemID
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(featured)
}

// SetFeaturedItem binds one slot to a menu item id, or clears it with null.
func (c *FeaturedController) SetFeaturedItem(ctx *fiber.Ctx) error {
	var input struct {
		Type   string  `json:"type"`
		ItemID *string `json:"itemId"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.IsFeaturedSlot(input.Type) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid featured slot"})
	}

	var row models.FeaturedItem
	err := c.DB.Where("type = ?", input.Type).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		row = models.FeaturedItem{Type: input.Type, ItemID: input.ItemID}
		if err := c.DB.Create(&row).Error; err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
	}
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Model(&row).Update("item_id", input.ItemID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	row.ItemID = input.ItemID

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": row})
}
