package controllers

import (
	"mobile-order/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ThemeController struct {
	DB *gorm.DB
}

func NewThemeController(DB *gorm.DB) *ThemeController {
	return &ThemeController{DB: DB}
}

type ColorScheme struct {
	Background           string `json:"background"`
	MainText             string `json:"mainText"`
	NavigationText       string `json:"navigationText"`
	SubCategoryButtonBg  string `json:"subCategoryButtonBg"`
	MainCategoryButtonBg string `json:"mainCategoryButtonBg"`
	HeaderBg             string `json:"headerBg"`
	HeaderIcon           string `json:"headerIcon"`
	HeroCarouselArrow    string `json:"heroCarouselArrow"`
	FooterBg             string `json:"footerBg"`
}

// ColorThemes are the two fixed palettes the client can switch between.
var ColorThemes = map[string]ColorScheme{
	models.ThemePart1: {
		Background:           "#ffffff",
		MainText:             "#1c1c1c",
		NavigationText:       "#a1a1a1",
		SubCategoryButtonBg:  "#ffffff",
		MainCategoryButtonBg: "#ffffff",
		HeaderBg:             "#ffffff",
		HeaderIcon:           "#1c1c1c",
		HeroCarouselArrow:    "#1c1c1c",
		FooterBg:             "#ffffff",
	},
	models.ThemePart2: {
		Background:           "#696363",
		MainText:             "#ffffff",
		NavigationText:       "#aba6a6",
		SubCategoryButtonBg:  "#696363",
		MainCategoryButtonBg: "#ffba0a",
		HeaderBg:             "#696363",
		HeaderIcon:           "#ffffff",
		HeroCarouselArrow:    "#aba6a6",
		FooterBg:             "#696363",
	},
}

// GetTheme returns the active theme name and its palette, defaulting to
// part1 when no row is active.
func (c *ThemeController) GetTheme(ctx *fiber.Ctx) error {
	theme := models.DefaultTheme

	var active models.ColorTheme
	err := c.DB.Where("is_active = ?", true).First(&active).Error
	if err == nil {
		theme = active.Value
	} else if err != gorm.ErrRecordNotFound {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.IsValidTheme(theme) {
		theme = models.DefaultTheme
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"theme":  theme,
		"colors": ColorThemes[theme],
	})
}

// SetTheme switches the single active palette: deactivate everything, then
// upsert-activate the requested one.
func (c *ThemeController) SetTheme(ctx *fiber.Ctx) error {
	var input struct {
		Theme string `json:"theme"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Theme == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Theme is required"})
	}
	if !models.IsValidTheme(input.Theme) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid theme"})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ColorTheme{}).Where("1 = 1").
			Update("is_active", false).Error; err != nil {
			return err
		}

		var theme models.ColorTheme
		err := tx.Where("name = ?", input.Theme).First(&theme).Error
		if err == gorm.ErrRecordNotFound {
			return tx.Create(&models.ColorTheme{
				Name:     input.Theme,
				Value:    input.Theme,
				IsActive: true,
			}).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&theme).Update("is_active", true).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"theme":  input.Theme,
		"colors": ColorThemes[input.Theme],
	})
}
