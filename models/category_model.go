package models

import "gorm.io/gorm"

// MainCategory is a top level menu grouping, e.g. "Main Dishes".
type MainCategory struct {
	gorm.Model
	Name          string        `json:"name" gorm:"unique;not null"`
	SortOrder     int           `json:"sortOrder" gorm:"default:0"`
	SubCategories []SubCategory `json:"subCategories" gorm:"foreignKey:MainCategoryID;constraint:OnDelete:CASCADE"`
	CreatedBy     int           `json:"-"`
	UpdatedBy     int           `json:"-"`
}

// SubCategory is nested under exactly one main category. Name is unique per
// parent, not globally.
type SubCategory struct {
	gorm.Model
	Name            string `json:"name" gorm:"not null;uniqueIndex:idx_sub_categories_parent_name"`
	MainCategoryID  uint   `json:"mainCategoryId" gorm:"uniqueIndex:idx_sub_categories_parent_name"`
	DisplayType     string `json:"displayType" gorm:"default:'text'"` // "text" or "image"
	BackgroundImage string `json:"backgroundImage"`                   // required when DisplayType is "image"
	SortOrder       int    `json:"sortOrder" gorm:"default:0"`
	CreatedBy       int    `json:"-"`
	UpdatedBy       int    `json:"-"`
}
