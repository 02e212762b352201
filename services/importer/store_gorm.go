package importer

import (
	"errors"

	"mobile-order/models"

	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) MainCategoryByName(name string) (*models.MainCategory, error) {
	var cat models.MainCategory
	if err := s.DB.Where("name = ?", name).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (s *GormStore) MaxMainCategorySortOrder() (int, bool, error) {
	var cat models.MainCategory
	err := s.DB.Order("sort_order DESC").First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return cat.SortOrder, true, nil
}

func (s *GormStore) CreateMainCategory(c *models.MainCategory) error {
	return s.DB.Create(c).Error
}

func (s *GormStore) SubCategoryByName(mainCategoryID uint, name string) (*models.SubCategory, error) {
	var sub models.SubCategory
	err := s.DB.Where("main_category_id = ? AND name = ?", mainCategoryID, name).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *GormStore) MaxSubCategorySortOrder(mainCategoryID uint) (int, bool, error) {
	var sub models.SubCategory
	err := s.DB.Where("main_category_id = ?", mainCategoryID).Order("sort_order DESC").First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return sub.SortOrder, true, nil
}

func (s *GormStore) CreateSubCategory(sub *models.SubCategory) error {
	return s.DB.Create(sub).Error
}

func (s *GormStore) MenuItemByName(subCategoryID uint, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.Where("sub_category_id = ? AND name = ?", subCategoryID, name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) CreateMenuItem(item *models.MenuItem) error {
	return s.DB.Create(item).Error
}

func (s *GormStore) SaveMenuItem(item *models.MenuItem) error {
	return s.DB.Save(item).Error
}
