package models

import (
	"mobile-order/types"

	"gorm.io/gorm"
)

const (
	CardSizeNormal = "normal"
	CardSizeLarge  = "large"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// MenuItem keeps the main/sub category names denormalized next to the
// SubCategoryID foreign key so the read path needs no joins. Renaming a
// category must cascade into these columns (see category controller).
type MenuItem struct {
	gorm.Model
	Name          string           `json:"name" gorm:"not null;index:idx_menu_items_sub_name"`
	Description   string           `json:"description"`
	Price         int              `json:"price" gorm:"default:0"` // whole yen, no minor unit
	Image         string           `json:"image"`
	Category      string           `json:"category"`
	SubCategory   string           `json:"subCategory"`
	SubCategoryID uint             `json:"subCategoryId" gorm:"index:idx_menu_items_sub_name"`
	SortOrder     int              `json:"sortOrder" gorm:"default:0"`
	IsAvailable   bool             `json:"isAvailable" gorm:"default:true"`
	Allergens     types.StringList `json:"allergens"`
	DietaryTags   types.StringList `json:"dietaryTags"`
	CardSize      string           `json:"cardSize" gorm:"default:'normal'"`
	MediaType     string           `json:"mediaType" gorm:"default:'image'"`
	CreatedBy     int              `json:"-"`
	UpdatedBy     int              `json:"-"`
}
