package database

import (
	"log"

	"mobile-order/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedThemes(db)
	SeedFeaturedSlots(db)
	SeedCategories(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@example.com").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if hashErr != nil {
				log.Fatalf("Failed to hash admin password: %v", hashErr)
			}
			admin := models.User{
				Name:     "Administrator",
				Email:    "admin@example.com",
				Password: string(hashed),
				Role:     models.RoleAdmin,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to seed admin user: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedThemes(db *gorm.DB) {
	themes := []models.ColorTheme{
		{Name: models.ThemePart1, Value: models.ThemePart1, IsActive: true},
		{Name: models.ThemePart2, Value: models.ThemePart2, IsActive: false},
	}

	for _, t := range themes {
		var existing models.ColorTheme
		if err := db.Where("name = ?", t.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&t)
			}
		}
	}
}

// SeedFeaturedSlots guarantees one row per hero slot.
func SeedFeaturedSlots(db *gorm.DB) {
	for _, slot := range models.FeaturedSlots {
		var existing models.FeaturedItem
		if err := db.Where("type = ?", slot).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&models.FeaturedItem{Type: slot, ItemID: nil})
			}
		}
	}
}

func SeedCategories(db *gorm.DB) {
	categories := []models.MainCategory{
		{
			Name:      "Main Dishes",
			SortOrder: 0,
			SubCategories: []models.SubCategory{
				{Name: "Fried Items", DisplayType: "text", SortOrder: 0},
				{Name: "Grilled Items", DisplayType: "text", SortOrder: 1},
			},
		},
		{
			Name:      "Drinks",
			SortOrder: 1,
			SubCategories: []models.SubCategory{
				{Name: "Soft Drinks", DisplayType: "text", SortOrder: 0},
			},
		},
	}

	for _, c := range categories {
		var existing models.MainCategory
		if err := db.Where("name = ?", c.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&c)
			}
		}
	}
}
