package models

import "gorm.io/gorm"

// FeaturedSlots is the fixed set of hero carousel positions.
var FeaturedSlots = []string{"slide1", "slide2", "slide3", "slide4", "slide5"}

// FeaturedItem maps one slot to an optional menu item id. There is always
// exactly one row per slot; ItemID is nil for an empty slot.
type FeaturedItem struct {
	gorm.Model
	Type   string  `json:"type" gorm:"unique;not null"`
	ItemID *string `json:"itemId"`
}

func IsFeaturedSlot(slot string) bool {
	for _, s := range FeaturedSlots {
		if s == slot {
			return true
		}
	}
	return false
}
