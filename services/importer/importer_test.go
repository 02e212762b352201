package importer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mobile-order/models"
)

// fakeStore keeps everything in slices so the pipeline can run without a
// database.
type fakeStore struct {
	mainCats []*models.MainCategory
	subCats  []*models.SubCategory
	items    []*models.MenuItem
	nextID   uint

	failCreateItem bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) MainCategoryByName(name string) (*models.MainCategory, error) {
	for _, c := range s.mainCats {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) MaxMainCategorySortOrder() (int, bool, error) {
	max, exists := 0, false
	for _, c := range s.mainCats {
		if !exists || c.SortOrder > max {
			max, exists = c.SortOrder, true
		}
	}
	return max, exists, nil
}

func (s *fakeStore) CreateMainCategory(c *models.MainCategory) error {
	c.ID = s.id()
	s.mainCats = append(s.mainCats, c)
	return nil
}

func (s *fakeStore) SubCategoryByName(mainCategoryID uint, name string) (*models.SubCategory, error) {
	for _, sub := range s.subCats {
		if sub.MainCategoryID == mainCategoryID && sub.Name == name {
			return sub, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) MaxSubCategorySortOrder(mainCategoryID uint) (int, bool, error) {
	max, exists := 0, false
	for _, sub := range s.subCats {
		if sub.MainCategoryID != mainCategoryID {
			continue
		}
		if !exists || sub.SortOrder > max {
			max, exists = sub.SortOrder, true
		}
	}
	return max, exists, nil
}

func (s *fakeStore) CreateSubCategory(sub *models.SubCategory) error {
	sub.ID = s.id()
	s.subCats = append(s.subCats, sub)
	return nil
}

func (s *fakeStore) MenuItemByName(subCategoryID uint, name string) (*models.MenuItem, error) {
	for _, item := range s.items {
		if item.SubCategoryID == subCategoryID && item.Name == name {
			return item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) CreateMenuItem(m *models.MenuItem) error {
	if s.failCreateItem {
		return fmt.Errorf("insert failed")
	}
	m.ID = s.id()
	s.items = append(s.items, m)
	return nil
}

func (s *fakeStore) SaveMenuItem(m *models.MenuItem) error {
	return nil
}

const sampleCSV = `main_category,sub_category,item_name,description,price,image,sort_order,is_available,allergens,dietary_tags,card_size,media_type
Main Dishes,Fried Items,Karaage,Fried chicken,580,img/karaage.jpg,0,true,"wheat, soy",,normal,image
Main Dishes,Fried Items,Tonkatsu,Pork cutlet,880,img/tonkatsu.jpg,1,,,"pork",large,image
Drinks,Soft Drinks,Oolong Tea,Cold tea,250,img/tea.jpg,0,true,,,normal,image
`

func TestImporter_CountsAddUp(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	csvText := sampleCSV + `Drinks,Soft Drinks,Cola,Fizzy,300,img/cola.jpg,abc,,,,normal,image` + "\n"
	result, err := imp.ImportCSV(csvText)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 4, result.Created+result.Updated+result.Skipped)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 5, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, "sort_order")
}

func TestImporter_ReimportIsIdempotent(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	first, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Created)

	second, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Updated)
	assert.Equal(t, 0, second.Skipped)
	assert.Len(t, store.items, 3)
}

func TestImporter_AutoCreatesCategoryPair(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	result, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	// First category pair seen lands at the front of an empty ordering.
	require.Len(t, store.mainCats, 2)
	assert.Equal(t, "Main Dishes", store.mainCats[0].Name)
	assert.Equal(t, 0, store.mainCats[0].SortOrder)
	assert.Equal(t, "Drinks", store.mainCats[1].Name)
	assert.Equal(t, 1, store.mainCats[1].SortOrder)

	require.Len(t, store.subCats, 2)
	assert.Equal(t, 0, store.subCats[0].SortOrder)
	assert.Equal(t, store.mainCats[0].ID, store.subCats[0].MainCategoryID)
	// "Soft Drinks" is the first sub category of "Drinks", so it also gets 0.
	assert.Equal(t, 0, store.subCats[1].SortOrder)
	assert.Equal(t, store.mainCats[1].ID, store.subCats[1].MainCategoryID)
}

func TestImporter_NewCategoryAppendsAfterExisting(t *testing.T) {
	store := newFakeStore()
	store.CreateMainCategory(&models.MainCategory{Name: "Desserts", SortOrder: 4})

	imp := NewImporter(store)
	_, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)

	cat, err := store.MainCategoryByName("Main Dishes")
	require.NoError(t, err)
	assert.Equal(t, 5, cat.SortOrder)
}

func TestImporter_InvalidCardSizeSkipsOnlyThatRow(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	csvText := `main_category,sub_category,item_name,description,price,image,sort_order,card_size
Main Dishes,Fried Items,Karaage,Fried chicken,580,img/karaage.jpg,0,huge
Main Dishes,Fried Items,Tonkatsu,Pork cutlet,880,img/tonkatsu.jpg,1,large
`
	result, err := imp.ImportCSV(csvText)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Contains(t, result.Errors[0].Message, `card_size "huge"`)

	require.Len(t, store.items, 1)
	assert.Equal(t, "Tonkatsu", store.items[0].Name)
}

func TestImporter_StoreFailureDoesNotStopBatch(t *testing.T) {
	store := newFakeStore()
	store.failCreateItem = true
	imp := NewImporter(store)

	result, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 3, result.Skipped)
	require.Len(t, result.Errors, 3)
	for _, rowErr := range result.Errors {
		assert.Contains(t, rowErr.Message, "Failed to create item")
	}
}

func TestImporter_UpdateRefreshesAllFields(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	_, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)

	changed := `main_category,sub_category,item_name,description,price,image,sort_order,is_available,card_size
Main Dishes,Fried Items,Karaage,Extra crispy,680,img/karaage2.jpg,3,false,large
`
	result, err := imp.ImportCSV(changed)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)

	sub, err := store.SubCategoryByName(store.mainCats[0].ID, "Fried Items")
	require.NoError(t, err)
	item, err := store.MenuItemByName(sub.ID, "Karaage")
	require.NoError(t, err)

	assert.Equal(t, "Extra crispy", item.Description)
	assert.Equal(t, 680, item.Price)
	assert.Equal(t, "img/karaage2.jpg", item.Image)
	assert.Equal(t, 3, item.SortOrder)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, models.CardSizeLarge, item.CardSize)
}

// Matching by (name, sub category) means a rename in the source file creates
// a second item instead of updating the old one.
func TestImporter_RenamedItemCreatesDuplicate(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store)

	_, err := imp.ImportCSV(sampleCSV)
	require.NoError(t, err)
	require.Len(t, store.items, 3)

	renamed := `main_category,sub_category,item_name,description,price,image,sort_order
Main Dishes,Fried Items,Chicken Karaage,Fried chicken,580,img/karaage.jpg,0
`
	result, err := imp.ImportCSV(renamed)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Len(t, store.items, 4)
}

func TestImportCSV_TooManyRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("main_category,sub_category,item_name,description,price,image,sort_order\n")
	for i := 0; i < MaxRows+1; i++ {
		fmt.Fprintf(&b, "Main Dishes,Fried Items,Item %d,desc,100,img.jpg,%d\n", i, i)
	}

	imp := NewImporter(newFakeStore())
	_, err := imp.ImportCSV(b.String())

	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "Too many rows (max 5000)", structural.Message)
}

func TestImportCSV_MalformedPayloadAborts(t *testing.T) {
	csvText := "main_category,sub_category,item_name,description,price,image,sort_order\n" +
		"Main Dishes,\"unterminated,Karaage,desc,580,img.jpg,0\n"

	imp := NewImporter(newFakeStore())
	_, err := imp.ImportCSV(csvText)

	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "CSV parsing error", structural.Message)
}

func TestImportCSV_EmptyPayload(t *testing.T) {
	imp := NewImporter(newFakeStore())

	result, err := imp.ImportCSV("")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created+result.Updated+result.Skipped)
	assert.NotNil(t, result.Errors) // serializes as [] not null
}
