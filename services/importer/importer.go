package importer

import (
	"fmt"
	"strings"
)

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type Result struct {
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Errors  []RowError `json:"errors"`
}

// Importer runs the whole batch: validate, resolve categories, upsert, one
// row at a time. A failing row is counted as skipped and never stops the
// rows after it; only payload-level problems abort the batch.
type Importer struct {
	resolver *CategoryResolver
	upserter *ItemUpserter
}

func NewImporter(store Store) *Importer {
	return &Importer{
		resolver: NewCategoryResolver(store),
		upserter: NewItemUpserter(store),
	}
}

// ImportCSV parses raw CSV text and imports every data row.
func (im *Importer) ImportCSV(text string) (*Result, error) {
	records, err := ParseCSV(text)
	if err != nil {
		return nil, err
	}
	return im.ImportRecords(records), nil
}

// ImportRecords processes already-parsed records. Row numbers reported in
// errors are file positions: +2 for the header line and 1-based indexing.
func (im *Importer) ImportRecords(records []Record) *Result {
	result := &Result{Errors: []RowError{}}

	for i, rec := range records {
		rowNum := i + 2
		im.importRow(rec, rowNum, result)
	}

	return result
}

func (im *Importer) importRow(rec Record, rowNum int, result *Result) {
	// A single bad row must never take the batch down.
	defer func() {
		if r := recover(); r != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: fmt.Sprint(r)})
			result.Skipped++
		}
	}()

	if msg := ValidateRow(rec, rowNum); msg != "" {
		result.Errors = append(result.Errors, RowError{Row: rowNum, Message: msg})
		result.Skipped++
		return
	}

	mainCategoryName := strings.TrimSpace(rec.MainCategory)
	subCategoryName := strings.TrimSpace(rec.SubCategory)

	mainCategory, err := im.resolver.ResolveMainCategory(mainCategoryName)
	if err != nil {
		result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
		result.Skipped++
		return
	}

	subCategory, err := im.resolver.ResolveSubCategory(mainCategory.ID, subCategoryName)
	if err != nil {
		result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
		result.Skipped++
		return
	}

	outcome, err := im.upserter.Upsert(subCategory.ID, mainCategoryName, subCategoryName, rec)
	if err != nil {
		result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
		result.Skipped++
		return
	}

	switch outcome {
	case OutcomeCreated:
		result.Created++
	case OutcomeUpdated:
		result.Updated++
	}
}
