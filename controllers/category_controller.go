package controllers

import (
	"errors"

	"mobile-order/models"
	"mobile-order/services/reorder"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(DB *gorm.DB) *CategoryController {
	return &CategoryController{DB: DB}
}

// GetAllCategories returns the full nested tree ordered for display.
func (c *CategoryController) GetAllCategories(ctx *fiber.Ctx) error {
	var categories []models.MainCategory
	err := c.DB.
		Preload("SubCategories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sub_categories.sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": categories})
}

func (c *CategoryController) CreateMainCategory(ctx *fiber.Ctx) error {
	var input struct {
		Name string `json:"name" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// New categories go to the end of the list.
	var maxSort int
	if err := c.DB.Model(&models.MainCategory{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxSort).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	category := models.MainCategory{
		Name:      input.Name,
		SortOrder: maxSort + 1,
		CreatedBy: userIDFromContext(ctx),
	}
	if err := c.DB.Create(&category).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Category created successfully", "data": category})
}

func (c *CategoryController) CreateSubCategory(ctx *fiber.Ctx) error {
	var input struct {
		Name            string `json:"name" validate:"required"`
		MainCategoryID  uint   `json:"mainCategoryId" validate:"required"`
		DisplayType     string `json:"displayType" validate:"omitempty,oneof=text image"`
		BackgroundImage string `json:"backgroundImage"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var parent models.MainCategory
	if err := c.DB.First(&parent, input.MainCategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Main category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	displayType := input.DisplayType
	if displayType == "" {
		displayType = "text"
	}

	var maxSort int
	if err := c.DB.Model(&models.SubCategory{}).
		Where("main_category_id = ?", parent.ID).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxSort).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	subCategory := models.SubCategory{
		Name:            input.Name,
		MainCategoryID:  parent.ID,
		DisplayType:     displayType,
		BackgroundImage: input.BackgroundImage,
		SortOrder:       maxSort + 1,
		CreatedBy:       userIDFromContext(ctx),
	}
	if err := c.DB.Create(&subCategory).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Sub category created successfully", "data": subCategory})
}

// UpdateMainCategory applies a partial update. A rename cascades into the
// denormalized category name on menu items.
func (c *CategoryController) UpdateMainCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var category models.MainCategory
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name *string `json:"name"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name == nil || *input.Name == "" || *input.Name == category.Name {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category updated successfully", "data": category})
	}

	oldName := category.Name
	newName := *input.Name

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.MenuItem{}).
			Where("category = ?", oldName).
			Update("category", newName).Error; err != nil {
			return err
		}
		return tx.Model(&category).Updates(map[string]interface{}{
			"name":       newName,
			"updated_by": userIDFromContext(ctx),
		}).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	category.Name = newName
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category updated successfully", "data": category})
}

func (c *CategoryController) UpdateSubCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var subCategory models.SubCategory
	if err := c.DB.First(&subCategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sub category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name            *string `json:"name"`
		DisplayType     *string `json:"displayType" validate:"omitempty,oneof=text image"`
		BackgroundImage *string `json:"backgroundImage"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{"updated_by": userIDFromContext(ctx)}
	if input.DisplayType != nil {
		updates["display_type"] = *input.DisplayType
	}
	if input.BackgroundImage != nil {
		updates["background_image"] = *input.BackgroundImage
	}

	renamed := input.Name != nil && *input.Name != "" && *input.Name != subCategory.Name
	if renamed {
		updates["name"] = *input.Name
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if renamed {
			if err := tx.Model(&models.MenuItem{}).
				Where("sub_category_id = ?", subCategory.ID).
				Update("sub_category", *input.Name).Error; err != nil {
				return err
			}
		}
		return tx.Model(&subCategory).Updates(updates).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.First(&subCategory, id).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sub category updated successfully", "data": subCategory})
}

// DeleteMainCategory cascades to sub categories and to every menu item whose
// denormalized category name matches, then closes the sort order gap.
func (c *CategoryController) DeleteMainCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var category models.MainCategory
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Hard delete: a soft-deleted row would keep the name locked in the
	// unique index and block re-creating or re-importing it.
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("category = ?", category.Name).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("main_category_id = ?", category.ID).Delete(&models.SubCategory{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&category).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	engine := reorder.NewEngine(reorder.NewGormStore(c.DB))
	if err := engine.CompactMainCategories(); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Category deleted successfully"})
}

func (c *CategoryController) DeleteSubCategory(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var subCategory models.SubCategory
	if err := c.DB.First(&subCategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Sub category not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("sub_category_id = ?", subCategory.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&subCategory).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	engine := reorder.NewEngine(reorder.NewGormStore(c.DB))
	if err := engine.CompactSubCategories(subCategory.MainCategoryID); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sub category deleted successfully"})
}

// ReorderCategories takes the complete new ordering of one sibling scope and
// renumbers it atomically.
func (c *CategoryController) ReorderCategories(ctx *fiber.Ctx) error {
	var input struct {
		Type           string `json:"type" validate:"required,oneof=main sub"`
		MainCategoryID uint   `json:"mainCategoryId"`
		IDs            []uint `json:"ids" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	engine := reorder.NewEngine(reorder.NewGormStore(c.DB))

	var err error
	switch input.Type {
	case "main":
		err = engine.ReorderMainCategories(input.IDs)
	case "sub":
		if input.MainCategoryID == 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "mainCategoryId is required for sub reorder"})
		}
		err = engine.ReorderSubCategories(input.MainCategoryID, input.IDs)
	}

	if err != nil {
		if errors.Is(err, reorder.ErrIncompleteSet) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Categories reordered successfully"})
}

func userIDFromContext(ctx *fiber.Ctx) int {
	if userID, ok := ctx.Locals("userID").(float64); ok {
		return int(userID)
	}
	return 0
}
