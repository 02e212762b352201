package controllers

import (
	"errors"

	"mobile-order/models"
	"mobile-order/services/reorder"
	"mobile-order/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(DB *gorm.DB) *MenuController {
	return &MenuController{DB: DB}
}

func (c *MenuController) GetAllMenuItems(ctx *fiber.Ctx) error {
	query := c.DB.Order("sort_order ASC")
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if subCategory := ctx.Query("subCategory"); subCategory != "" {
		query = query.Where("sub_category = ?", subCategory)
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": items})
}

func (c *MenuController) GetMenuItemByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.MenuItem
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": item})
}

func (c *MenuController) CreateMenuItem(ctx *fiber.Ctx) error {
	var input struct {
		Name        string   `json:"name" validate:"required"`
		Description string   `json:"description"`
		Price       int      `json:"price" validate:"gte=0"`
		Image       string   `json:"image"`
		Category    string   `json:"category" validate:"required"`
		SubCategory string   `json:"subCategory" validate:"required"`
		CardSize    string   `json:"cardSize" validate:"omitempty,oneof=normal large"`
		MediaType   string   `json:"mediaType" validate:"omitempty,oneof=image video"`
		Allergens   []string `json:"allergens"`
		DietaryTags []string `json:"dietaryTags"`
		IsAvailable *bool    `json:"isAvailable"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var mainCategory models.MainCategory
	if err := c.DB.Where("name = ?", input.Category).First(&mainCategory).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Main category not found"})
	}
	var subCategory models.SubCategory
	if err := c.DB.Where("main_category_id = ? AND name = ?", mainCategory.ID, input.SubCategory).
		First(&subCategory).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Sub category not found"})
	}

	// New items append to their sibling group.
	var maxSort int
	if err := c.DB.Model(&models.MenuItem{}).
		Where("category = ? AND sub_category = ?", input.Category, input.SubCategory).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxSort).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	cardSize := input.CardSize
	if cardSize == "" {
		cardSize = models.CardSizeNormal
	}
	mediaType := input.MediaType
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}
	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}

	item := models.MenuItem{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Image:         input.Image,
		Category:      input.Category,
		SubCategory:   input.SubCategory,
		SubCategoryID: subCategory.ID,
		SortOrder:     maxSort + 1,
		IsAvailable:   isAvailable,
		Allergens:     types.StringList(input.Allergens),
		DietaryTags:   types.StringList(input.DietaryTags),
		CardSize:      cardSize,
		MediaType:     mediaType,
		CreatedBy:     userIDFromContext(ctx),
	}
	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Menu item created successfully", "data": item})
}

// UpdateMenuItem applies only the fields present in the payload.
func (c *MenuController) UpdateMenuItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.MenuItem
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Price       *int      `json:"price" validate:"omitempty,gte=0"`
		Image       *string   `json:"image"`
		CardSize    *string   `json:"cardSize" validate:"omitempty,oneof=normal large"`
		MediaType   *string   `json:"mediaType" validate:"omitempty,oneof=image video"`
		Allergens   *[]string `json:"allergens"`
		DietaryTags *[]string `json:"dietaryTags"`
		IsAvailable *bool     `json:"isAvailable"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{"updated_by": userIDFromContext(ctx)}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.CardSize != nil {
		updates["card_size"] = *input.CardSize
	}
	if input.MediaType != nil {
		updates["media_type"] = *input.MediaType
	}
	if input.Allergens != nil {
		updates["allergens"] = types.StringList(*input.Allergens)
	}
	if input.DietaryTags != nil {
		updates["dietary_tags"] = types.StringList(*input.DietaryTags)
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if err := c.DB.Model(&item).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.First(&item, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Menu item updated successfully", "data": item})
}

// DeleteMenuItem removes the item and renumbers the remaining siblings so
// their positions stay contiguous.
func (c *MenuController) DeleteMenuItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.MenuItem
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Unscoped().Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	engine := reorder.NewEngine(reorder.NewGormStore(c.DB))
	if err := engine.CompactMenuItems(item.Category, item.SubCategory); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Menu item deleted successfully"})
}

// ReorderMenuItems renumbers every item of one (category, subCategory) pair
// in a single atomic call.
func (c *MenuController) ReorderMenuItems(ctx *fiber.Ctx) error {
	var input struct {
		Category    string `json:"category" validate:"required"`
		SubCategory string `json:"subCategory" validate:"required"`
		IDs         []uint `json:"ids" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	engine := reorder.NewEngine(reorder.NewGormStore(c.DB))
	if err := engine.ReorderMenuItems(input.Category, input.SubCategory, input.IDs); err != nil {
		if errors.Is(err, reorder.ErrIncompleteSet) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Menu items reordered successfully"})
}
