package importer

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRow checks one record and returns a message naming the row and the
// first failing field, or "" when the record is importable. rowNum is the
// 1-based position in the source file including the header line.
func ValidateRow(rec Record, rowNum int) string {
	required := []struct {
		name  string
		value string
	}{
		{"main_category", rec.MainCategory},
		{"sub_category", rec.SubCategory},
		{"item_name", rec.ItemName},
		{"description", rec.Description},
		{"price", rec.Price},
		{"image", rec.Image},
		{"sort_order", rec.SortOrder},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Sprintf("Row %d: Missing required field %q", rowNum, field.name)
		}
	}

	price, err := strconv.Atoi(strings.TrimSpace(rec.Price))
	if err != nil || price < 0 {
		return fmt.Sprintf("Row %d: Invalid price %q", rowNum, rec.Price)
	}

	if _, err := strconv.Atoi(strings.TrimSpace(rec.SortOrder)); err != nil {
		return fmt.Sprintf("Row %d: Invalid sort_order %q", rowNum, rec.SortOrder)
	}

	if rec.CardSize != "" {
		switch strings.ToLower(strings.TrimSpace(rec.CardSize)) {
		case "normal", "large":
		default:
			return fmt.Sprintf("Row %d: Invalid card_size %q. Must be \"normal\" or \"large\"", rowNum, rec.CardSize)
		}
	}

	if rec.MediaType != "" {
		switch strings.ToLower(strings.TrimSpace(rec.MediaType)) {
		case "image", "video":
		default:
			return fmt.Sprintf("Row %d: Invalid media_type %q. Must be \"image\" or \"video\"", rowNum, rec.MediaType)
		}
	}

	return ""
}
