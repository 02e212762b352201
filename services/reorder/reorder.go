package reorder

import (
	"errors"
	"fmt"
)

// ErrIncompleteSet rejects orderings that are not a permutation of the
// current sibling set. Applying a partial list would leave gaps or duplicate
// positions behind.
var ErrIncompleteSet = errors.New("reordered list must contain every sibling exactly once")

type Update struct {
	ID        uint
	SortOrder int
}

// Store loads sibling ids (in current display order) and applies a batch of
// sort order updates. Apply* implementations must be atomic: either every
// sibling gets its new position or none does.
type Store interface {
	MainCategoryIDs() ([]uint, error)
	SubCategoryIDs(mainCategoryID uint) ([]uint, error)
	MenuItemIDs(category, subCategory string) ([]uint, error)

	ApplyMainCategories(updates []Update) error
	ApplySubCategories(updates []Update) error
	ApplyMenuItems(updates []Update) error
}

// Engine renumbers sibling scopes to a contiguous zero-based sequence. It is
// the only writer allowed to change sort orders in bulk; delete handlers call
// the Compact variants so removals never leave gaps.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

func (e *Engine) ReorderMainCategories(orderedIDs []uint) error {
	current, err := e.store.MainCategoryIDs()
	if err != nil {
		return err
	}
	if err := checkPermutation(current, orderedIDs); err != nil {
		return err
	}
	return e.store.ApplyMainCategories(sequence(orderedIDs))
}

func (e *Engine) ReorderSubCategories(mainCategoryID uint, orderedIDs []uint) error {
	current, err := e.store.SubCategoryIDs(mainCategoryID)
	if err != nil {
		return err
	}
	if err := checkPermutation(current, orderedIDs); err != nil {
		return err
	}
	return e.store.ApplySubCategories(sequence(orderedIDs))
}

func (e *Engine) ReorderMenuItems(category, subCategory string, orderedIDs []uint) error {
	current, err := e.store.MenuItemIDs(category, subCategory)
	if err != nil {
		return err
	}
	if err := checkPermutation(current, orderedIDs); err != nil {
		return err
	}
	return e.store.ApplyMenuItems(sequence(orderedIDs))
}

// CompactMainCategories renumbers the remaining main categories in their
// current order, closing any gap a deletion left.
func (e *Engine) CompactMainCategories() error {
	current, err := e.store.MainCategoryIDs()
	if err != nil {
		return err
	}
	return e.store.ApplyMainCategories(sequence(current))
}

func (e *Engine) CompactSubCategories(mainCategoryID uint) error {
	current, err := e.store.SubCategoryIDs(mainCategoryID)
	if err != nil {
		return err
	}
	return e.store.ApplySubCategories(sequence(current))
}

func (e *Engine) CompactMenuItems(category, subCategory string) error {
	current, err := e.store.MenuItemIDs(category, subCategory)
	if err != nil {
		return err
	}
	return e.store.ApplyMenuItems(sequence(current))
}

func sequence(orderedIDs []uint) []Update {
	updates := make([]Update, len(orderedIDs))
	for i, id := range orderedIDs {
		updates[i] = Update{ID: id, SortOrder: i}
	}
	return updates
}

func checkPermutation(current, proposed []uint) error {
	if len(current) != len(proposed) {
		return fmt.Errorf("%w: have %d siblings, got %d", ErrIncompleteSet, len(current), len(proposed))
	}
	seen := make(map[uint]bool, len(current))
	for _, id := range current {
		seen[id] = true
	}
	used := make(map[uint]bool, len(proposed))
	for _, id := range proposed {
		if !seen[id] || used[id] {
			return fmt.Errorf("%w: id %d", ErrIncompleteSet, id)
		}
		used[id] = true
	}
	return nil
}
