package importer

import (
	"errors"
	"fmt"

	"mobile-order/models"
)

// CategoryResolver finds or creates category records by name. A created
// record goes to the end of its sibling ordering (max+1, or 0 when the scope
// is empty).
//
// The lookup and the conditional create are not guarded by a transaction;
// two concurrent batches naming the same missing category can race. Batches
// are processed row-by-row by a single goroutine, so within one import this
// cannot happen.
type CategoryResolver struct {
	store Store
}

func NewCategoryResolver(store Store) *CategoryResolver {
	return &CategoryResolver{store: store}
}

func (r *CategoryResolver) ResolveMainCategory(name string) (*models.MainCategory, error) {
	cat, err := r.store.MainCategoryByName(name)
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("Main category error: %v", err)
	}

	sortOrder := 0
	max, exists, err := r.store.MaxMainCategorySortOrder()
	if err != nil {
		return nil, fmt.Errorf("Main category error: %v", err)
	}
	if exists {
		sortOrder = max + 1
	}

	created := &models.MainCategory{Name: name, SortOrder: sortOrder}
	if err := r.store.CreateMainCategory(created); err != nil {
		return nil, fmt.Errorf("Failed to create main category: %v", err)
	}
	return created, nil
}

func (r *CategoryResolver) ResolveSubCategory(mainCategoryID uint, name string) (*models.SubCategory, error) {
	sub, err := r.store.SubCategoryByName(mainCategoryID, name)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("Sub category error: %v", err)
	}

	sortOrder := 0
	max, exists, err := r.store.MaxSubCategorySortOrder(mainCategoryID)
	if err != nil {
		return nil, fmt.Errorf("Sub category error: %v", err)
	}
	if exists {
		sortOrder = max + 1
	}

	created := &models.SubCategory{
		Name:           name,
		MainCategoryID: mainCategoryID,
		DisplayType:    "text",
		SortOrder:      sortOrder,
	}
	if err := r.store.CreateSubCategory(created); err != nil {
		return nil, fmt.Errorf("Failed to create sub category: %v", err)
	}
	return created, nil
}
