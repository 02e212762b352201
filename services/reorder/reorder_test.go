package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore holds sibling scopes as ordered id slices and records the last
// batch of updates applied to each.
type fakeStore struct {
	mainIDs []uint
	subIDs  map[uint][]uint
	itemIDs map[[2]string][]uint

	appliedMain []Update
	appliedSub  []Update
	appliedItem []Update
}

func (s *fakeStore) MainCategoryIDs() ([]uint, error) { return s.mainIDs, nil }

func (s *fakeStore) SubCategoryIDs(mainCategoryID uint) ([]uint, error) {
	return s.subIDs[mainCategoryID], nil
}

func (s *fakeStore) MenuItemIDs(category, subCategory string) ([]uint, error) {
	return s.itemIDs[[2]string{category, subCategory}], nil
}

func (s *fakeStore) ApplyMainCategories(updates []Update) error {
	s.appliedMain = updates
	return nil
}

func (s *fakeStore) ApplySubCategories(updates []Update) error {
	s.appliedSub = updates
	return nil
}

func (s *fakeStore) ApplyMenuItems(updates []Update) error {
	s.appliedItem = updates
	return nil
}

func assertContiguous(t *testing.T, updates []Update, wantIDs []uint) {
	t.Helper()
	require.Len(t, updates, len(wantIDs))
	for i, u := range updates {
		assert.Equal(t, wantIDs[i], u.ID)
		assert.Equal(t, i, u.SortOrder)
	}
}

func TestReorderMainCategories(t *testing.T) {
	store := &fakeStore{mainIDs: []uint{1, 2, 3}}
	engine := NewEngine(store)

	err := engine.ReorderMainCategories([]uint{3, 1, 2})
	require.NoError(t, err)

	assertContiguous(t, store.appliedMain, []uint{3, 1, 2})
}

func TestReorderMainCategories_RejectsNonPermutations(t *testing.T) {
	tests := []struct {
		name     string
		proposed []uint
	}{
		{"missing sibling", []uint{1, 2}},
		{"foreign id", []uint{1, 2, 99}},
		{"duplicate id", []uint{1, 2, 2}},
		{"extra id", []uint{1, 2, 3, 4}},
		{"empty list", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{mainIDs: []uint{1, 2, 3}}
			engine := NewEngine(store)

			err := engine.ReorderMainCategories(tt.proposed)
			require.ErrorIs(t, err, ErrIncompleteSet)
			assert.Nil(t, store.appliedMain, "no writes on a rejected list")
		})
	}
}

func TestReorderSubCategories_ScopedToParent(t *testing.T) {
	store := &fakeStore{subIDs: map[uint][]uint{
		1: {10, 11},
		2: {20, 21, 22},
	}}
	engine := NewEngine(store)

	err := engine.ReorderSubCategories(2, []uint{22, 20, 21})
	require.NoError(t, err)
	assertContiguous(t, store.appliedSub, []uint{22, 20, 21})

	// Ids from a sibling scope under another parent never pass.
	err = engine.ReorderSubCategories(1, []uint{10, 20})
	require.ErrorIs(t, err, ErrIncompleteSet)
}

func TestReorderMenuItems(t *testing.T) {
	store := &fakeStore{itemIDs: map[[2]string][]uint{
		{"Main Dishes", "Fried Items"}: {5, 6, 7, 8},
	}}
	engine := NewEngine(store)

	err := engine.ReorderMenuItems("Main Dishes", "Fried Items", []uint{8, 5, 7, 6})
	require.NoError(t, err)
	assertContiguous(t, store.appliedItem, []uint{8, 5, 7, 6})
}

func TestCompactMainCategories(t *testing.T) {
	// Current order with gaps left by a deletion; compacting keeps the order
	// and renumbers from zero.
	store := &fakeStore{mainIDs: []uint{4, 9, 2}}
	engine := NewEngine(store)

	require.NoError(t, engine.CompactMainCategories())
	assertContiguous(t, store.appliedMain, []uint{4, 9, 2})
}

func TestCompactSubCategories(t *testing.T) {
	store := &fakeStore{subIDs: map[uint][]uint{3: {31, 33}}}
	engine := NewEngine(store)

	require.NoError(t, engine.CompactSubCategories(3))
	assertContiguous(t, store.appliedSub, []uint{31, 33})
}

func TestCompactMenuItems_EmptyScope(t *testing.T) {
	store := &fakeStore{itemIDs: map[[2]string][]uint{}}
	engine := NewEngine(store)

	require.NoError(t, engine.CompactMenuItems("Drinks", "Soft Drinks"))
	assert.Empty(t, store.appliedItem)
}
