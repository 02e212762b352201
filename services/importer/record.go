package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Import limits enforced before any row is processed.
const (
	MaxPayloadBytes = 5 * 1024 * 1024
	MaxRows         = 5000
)

// Record is one data row of a menu upload, still untyped. Coercion and
// validation happen later so every failure can name its row.
type Record struct {
	MainCategory string
	SubCategory  string
	ItemName     string
	Description  string
	Price        string
	Image        string
	SortOrder    string
	IsAvailable  string
	Allergens    string
	DietaryTags  string
	CardSize     string
	MediaType    string
}

// StructuralError aborts a whole batch: bad CSV syntax, oversized payload or
// too many rows. Row-level problems never use it.
type StructuralError struct {
	Message string
	Details []string
}

func (e *StructuralError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Details, "; "))
}

// ParseCSV reads header-mapped records from raw CSV text. Header names are
// trimmed and matched case-insensitively; unknown columns are ignored. Any
// syntax error (malformed quoting, ragged rows) fails the whole payload.
func ParseCSV(text string) ([]Record, error) {
	if len(text) > MaxPayloadBytes {
		return nil, &StructuralError{Message: "File too large (max 5MB)"}
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []Record{}, nil
	}
	if err != nil {
		return nil, &StructuralError{Message: "CSV parsing error", Details: []string{err.Error()}}
	}

	var (
		records   []Record
		parseErrs []string
	)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrs = append(parseErrs, err.Error())
			continue
		}
		records = append(records, recordFromFields(header, fields))
	}

	if len(parseErrs) > 0 {
		return nil, &StructuralError{Message: "CSV parsing error", Details: parseErrs}
	}
	if len(records) > MaxRows {
		return nil, &StructuralError{Message: "Too many rows (max 5000)"}
	}
	return records, nil
}

// ParseWorkbook reads the same records from the first sheet of an Excel file.
// Blank rows are dropped before import, so the row numbers reported in the
// result count data rows, not sheet lines; a sheet with blank spacer rows
// shifts the reported positions up accordingly.
func ParseWorkbook(r io.Reader) ([]Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &StructuralError{Message: "Failed to read Excel file"}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &StructuralError{Message: "No sheets found in Excel file"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &StructuralError{Message: "Failed to read rows", Details: []string{err.Error()}}
	}
	if len(rows) == 0 {
		return []Record{}, nil
	}

	header := rows[0]
	var records []Record
	for _, fields := range rows[1:] {
		if isBlankRow(fields) {
			continue
		}
		records = append(records, recordFromFields(header, fields))
	}

	if len(records) > MaxRows {
		return nil, &StructuralError{Message: "Too many rows (max 5000)"}
	}
	return records, nil
}

func recordFromFields(header, fields []string) Record {
	var rec Record
	for i, name := range header {
		if i >= len(fields) {
			break
		}
		value := fields[i]
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "main_category":
			rec.MainCategory = value
		case "sub_category":
			rec.SubCategory = value
		case "item_name":
			rec.ItemName = value
		case "description":
			rec.Description = value
		case "price":
			rec.Price = value
		case "image":
			rec.Image = value
		case "sort_order":
			rec.SortOrder = value
		case "is_available":
			rec.IsAvailable = value
		case "allergens":
			rec.Allergens = value
		case "dietary_tags":
			rec.DietaryTags = value
		case "card_size":
			rec.CardSize = value
		case "media_type":
			rec.MediaType = value
		}
	}
	return rec
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ParseBool coerces is_available: absent or unparsable means available.
func ParseBool(value string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "true" || normalized == "1"
}

// ParseList splits a comma separated tag list, dropping empty tokens.
func ParseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
