package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecord() Record {
	return Record{
		MainCategory: "Main Dishes",
		SubCategory:  "Fried Items",
		ItemName:     "Karaage",
		Description:  "Fried chicken",
		Price:        "580",
		Image:        "https://example.com/karaage.jpg",
		SortOrder:    "0",
	}
}

func TestValidateRow_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
		field  string
	}{
		{"missing main_category", func(r *Record) { r.MainCategory = "" }, "main_category"},
		{"missing sub_category", func(r *Record) { r.SubCategory = "  " }, "sub_category"},
		{"missing item_name", func(r *Record) { r.ItemName = "" }, "item_name"},
		{"missing description", func(r *Record) { r.Description = "" }, "description"},
		{"missing price", func(r *Record) { r.Price = "" }, "price"},
		{"missing image", func(r *Record) { r.Image = "" }, "image"},
		{"missing sort_order", func(r *Record) { r.SortOrder = "" }, "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(&rec)

			msg := ValidateRow(rec, 3)
			assert.NotEmpty(t, msg)
			assert.Contains(t, msg, "Row 3")
			assert.Contains(t, msg, tt.field)
		})
	}
}

func TestValidateRow_Price(t *testing.T) {
	tests := []struct {
		name  string
		price string
		valid bool
	}{
		{"zero is allowed", "0", true},
		{"positive", "1200", true},
		{"negative rejected", "-5", false},
		{"not a number", "abc", false},
		{"trailing garbage", "12yen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			rec.Price = tt.price

			msg := ValidateRow(rec, 2)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.Contains(t, msg, "price")
			}
		})
	}
}

func TestValidateRow_SortOrder(t *testing.T) {
	rec := validRecord()
	rec.SortOrder = "abc"
	assert.Contains(t, ValidateRow(rec, 5), "sort_order")

	// Negative sort orders are accepted; only the format matters here.
	rec.SortOrder = "-3"
	assert.Empty(t, ValidateRow(rec, 5))
}

func TestValidateRow_CardSizeAndMediaType(t *testing.T) {
	rec := validRecord()
	rec.CardSize = "huge"
	msg := ValidateRow(rec, 4)
	assert.Contains(t, msg, "card_size")

	rec = validRecord()
	rec.CardSize = "Large" // case-insensitive
	assert.Empty(t, ValidateRow(rec, 4))

	rec = validRecord()
	rec.MediaType = "gif"
	assert.Contains(t, ValidateRow(rec, 4), "media_type")

	rec = validRecord()
	rec.MediaType = "VIDEO"
	assert.Empty(t, ValidateRow(rec, 4))
}

func TestValidateRow_ShortCircuitsOnFirstFailure(t *testing.T) {
	rec := validRecord()
	rec.Price = ""
	rec.SortOrder = "abc"

	msg := ValidateRow(rec, 2)
	assert.Contains(t, msg, "price")
	assert.NotContains(t, msg, "sort_order")
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool(""))
	assert.True(t, ParseBool("   "))
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("TRUE"))
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool("0"))
	assert.False(t, ParseBool("yes")) // unknown values mean unavailable
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{}, ParseList(""))
	assert.Equal(t, []string{}, ParseList("  "))
	assert.Equal(t, []string{"egg", "wheat"}, ParseList("egg, wheat"))
	assert.Equal(t, []string{"egg"}, ParseList("egg,, ,"))
}
