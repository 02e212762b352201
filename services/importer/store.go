package importer

import (
	"errors"

	"mobile-order/models"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface the import pipeline needs. The GORM
// implementation lives in store_gorm.go; tests use an in-memory fake.
type Store interface {
	MainCategoryByName(name string) (*models.MainCategory, error)
	MaxMainCategorySortOrder() (max int, exists bool, err error)
	CreateMainCategory(c *models.MainCategory) error

	SubCategoryByName(mainCategoryID uint, name string) (*models.SubCategory, error)
	MaxSubCategorySortOrder(mainCategoryID uint) (max int, exists bool, err error)
	CreateSubCategory(s *models.SubCategory) error

	MenuItemByName(subCategoryID uint, name string) (*models.MenuItem, error)
	CreateMenuItem(m *models.MenuItem) error
	SaveMenuItem(m *models.MenuItem) error
}
