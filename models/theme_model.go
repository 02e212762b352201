package models

import "gorm.io/gorm"

const (
	ThemePart1 = "part1"
	ThemePart2 = "part2"

	DefaultTheme = ThemePart1
)

// ColorTheme holds the selectable palettes. At most one row is active; GET
// falls back to part1 when none is.
type ColorTheme struct {
	gorm.Model
	Name     string `json:"name" gorm:"unique;not null"`
	Value    string `json:"value"`
	IsActive bool   `json:"isActive" gorm:"default:false"`
}

func IsValidTheme(theme string) bool {
	return theme == ThemePart1 || theme == ThemePart2
}
