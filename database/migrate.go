package database

import (
	"mobile-order/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MainCategory{},
		&models.SubCategory{},
		&models.MenuItem{},
		&models.FeaturedItem{},
		&models.ColorTheme{},
		&models.Order{},
		&models.OrderItem{},
		&models.ImportFileLog{},
	)
}
