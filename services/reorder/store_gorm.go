package reorder

import (
	"mobile-order/models"

	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) MainCategoryIDs() ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.MainCategory{}).
		Order("sort_order ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) SubCategoryIDs(mainCategoryID uint) ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.SubCategory{}).
		Where("main_category_id = ?", mainCategoryID).
		Order("sort_order ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) MenuItemIDs(category, subCategory string) ([]uint, error) {
	var ids []uint
	err := s.DB.Model(&models.MenuItem{}).
		Where("category = ? AND sub_category = ?", category, subCategory).
		Order("sort_order ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) ApplyMainCategories(updates []Update) error {
	return s.applyInTx(&models.MainCategory{}, updates)
}

func (s *GormStore) ApplySubCategories(updates []Update) error {
	return s.applyInTx(&models.SubCategory{}, updates)
}

func (s *GormStore) ApplyMenuItems(updates []Update) error {
	return s.applyInTx(&models.MenuItem{}, updates)
}

func (s *GormStore) applyInTx(model interface{}, updates []Update) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			if err := tx.Model(model).Where("id = ?", u.ID).
				Update("sort_order", u.SortOrder).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
