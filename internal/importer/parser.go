package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Column headers of the upload template. Matching is trim- and
// case-insensitive.
const (
	colRestaurantName = "restaurant name"
	colItemName       = "name"
	colPrice          = "price"
	colCategory       = "category"
	colDescription    = "description"
	colVeg            = "veg"
	colVegan          = "vegan"
	colPrepTime       = "prep time"
	colAvailable      = "available"
	colImageURL       = "image url"
)

var requiredColumns = []string{colRestaurantName, colItemName, colPrice}

// ParseRows reads the whole CSV up front. Any structural error or a
// missing mandatory column rejects the batch before anything is
// written; a malformed file must be fixed and re-uploaded in full.
func ParseRows(r io.Reader) ([]ImportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", err)
	}

	if len(records) == 0 {
		return nil, errors.New("empty file")
	}

	columns := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	rows := make([]ImportRow, 0, len(records)-1)

	for _, record := range records[1:] {
		rows = append(rows, ImportRow{
			RestaurantName: field(record, colRestaurantName),
			ItemName:       field(record, colItemName),
			Price:          field(record, colPrice),
			CategoryName:   field(record, colCategory),
			Description:    field(record, colDescription),
			IsVeg:          field(record, colVeg),
			IsVegan:        field(record, colVegan),
			PrepTime:       field(record, colPrepTime),
			IsAvailable:    field(record, colAvailable),
			ImageURL:       field(record, colImageURL),
		})
	}

	return rows, nil
}
