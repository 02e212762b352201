package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV_HeaderMapping(t *testing.T) {
	// Header casing and column order must not matter; unknown columns are
	// ignored.
	csvText := `Item_Name, MAIN_CATEGORY ,sub_category,price,description,image,sort_order,comment
Karaage,Main Dishes,Fried Items,580,Fried chicken,img.jpg,0,ignore me
`
	records, err := ParseCSV(csvText)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Karaage", records[0].ItemName)
	assert.Equal(t, "Main Dishes", records[0].MainCategory)
	assert.Equal(t, "Fried Items", records[0].SubCategory)
	assert.Equal(t, "580", records[0].Price)
	assert.Equal(t, "0", records[0].SortOrder)
}

func TestParseCSV_ShortRow(t *testing.T) {
	// encoding/csv flags ragged rows, so a short data row fails the payload.
	csvText := "main_category,sub_category,item_name\nMain Dishes,Fried Items\n"

	_, err := ParseCSV(csvText)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "CSV parsing error", structural.Message)
	assert.NotEmpty(t, structural.Details)
}

func TestParseCSV_PayloadTooLarge(t *testing.T) {
	text := strings.Repeat("a", MaxPayloadBytes+1)

	_, err := ParseCSV(text)
	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "File too large (max 5MB)", structural.Message)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	records, err := ParseCSV("main_category,sub_category,item_name\n")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseWorkbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1",
		&[]interface{}{"main_category", "sub_category", "item_name", "description", "price", "image", "sort_order"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2",
		&[]interface{}{"Main Dishes", "Fried Items", "Karaage", "Fried chicken", 580, "img.jpg", 0}))
	// Blank spacer row, then another item. Blank rows are dropped.
	require.NoError(t, f.SetSheetRow("Sheet1", "A4",
		&[]interface{}{"Drinks", "Soft Drinks", "Oolong Tea", "Cold tea", 250, "img.jpg", 0}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	records, err := ParseWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Karaage", records[0].ItemName)
	assert.Equal(t, "580", records[0].Price)
	assert.Equal(t, "Oolong Tea", records[1].ItemName)
}

func TestParseWorkbook_NotASpreadsheet(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("not a zip archive"))

	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "Failed to read Excel file", structural.Message)
}
