package importer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mobile-order/models"
)

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// ItemUpserter matches menu items by (name, sub category). That is display
// identity, not a stable key: renaming an item in a re-imported file creates
// a second row instead of updating the old one. Documented behavior.
type ItemUpserter struct {
	store Store
}

func NewItemUpserter(store Store) *ItemUpserter {
	return &ItemUpserter{store: store}
}

// Upsert writes one validated record under the resolved sub category and
// reports whether it created or updated. Callers must validate the record
// first; price and sort_order are assumed to parse.
func (u *ItemUpserter) Upsert(subCategoryID uint, mainCategoryName, subCategoryName string, rec Record) (Outcome, error) {
	itemName := strings.TrimSpace(rec.ItemName)
	price, _ := strconv.Atoi(strings.TrimSpace(rec.Price))
	sortOrder, _ := strconv.Atoi(strings.TrimSpace(rec.SortOrder))

	cardSize := strings.ToLower(strings.TrimSpace(rec.CardSize))
	if cardSize == "" {
		cardSize = models.CardSizeNormal
	}
	mediaType := strings.ToLower(strings.TrimSpace(rec.MediaType))
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	existing, err := u.store.MenuItemByName(subCategoryID, itemName)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", fmt.Errorf("Menu item error: %v", err)
	}

	if existing != nil {
		existing.Description = strings.TrimSpace(rec.Description)
		existing.Price = price
		existing.Image = strings.TrimSpace(rec.Image)
		existing.Category = mainCategoryName
		existing.SubCategory = subCategoryName
		existing.SortOrder = sortOrder
		existing.IsAvailable = ParseBool(rec.IsAvailable)
		existing.Allergens = ParseList(rec.Allergens)
		existing.DietaryTags = ParseList(rec.DietaryTags)
		existing.CardSize = cardSize
		existing.MediaType = mediaType

		if err := u.store.SaveMenuItem(existing); err != nil {
			return "", fmt.Errorf("Failed to update item: %v", err)
		}
		return OutcomeUpdated, nil
	}

	item := &models.MenuItem{
		Name:          itemName,
		Description:   strings.TrimSpace(rec.Description),
		Price:         price,
		Image:         strings.TrimSpace(rec.Image),
		Category:      mainCategoryName,
		SubCategory:   subCategoryName,
		SubCategoryID: subCategoryID,
		SortOrder:     sortOrder,
		IsAvailable:   ParseBool(rec.IsAvailable),
		Allergens:     ParseList(rec.Allergens),
		DietaryTags:   ParseList(rec.DietaryTags),
		CardSize:      cardSize,
		MediaType:     mediaType,
	}
	if err := u.store.CreateMenuItem(item); err != nil {
		return "", fmt.Errorf("Failed to create item: %v", err)
	}
	return OutcomeCreated, nil
}
