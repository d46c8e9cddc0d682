package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// canonical field order, matching common.NewRecord's parameters.
var fieldOrder = []string{
	"customer_id", "first_name", "last_name", "company",
	"city", "country", "email", "subscription_date", "website",
}

// headerAliases maps each canonical field to the header spellings seen
// in the wild for this dataset.
var headerAliases = map[string][]string{
	"customer_id":       {"customer id", "customer_id", "id"},
	"first_name":        {"first name", "firstname", "first_name"},
	"last_name":         {"last name", "lastname", "last_name"},
	"company":           {"company", "company name"},
	"city":              {"city"},
	"country":           {"country"},
	"email":             {"email"},
	"subscription_date": {"subscription date", "subscription_date", "date"},
	"website":           {"website", "web"},
}

// CSVSource reads customer rows from a CSV file. The first row is the
// header; recognized column names may appear in any order. When no
// column name is recognized the remaining rows are taken positionally.
type CSVSource struct {
	Path string
}

func (s CSVSource) Rows() ([][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	raw, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	index := mapHeader(raw[0])
	rows := make([][]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make([]string, len(fieldOrder))
		for i, field := range fieldOrder {
			pos := i
			if index != nil {
				var ok bool
				if pos, ok = index[field]; !ok {
					continue
				}
			}
			if pos < len(cells) {
				row[i] = cells[pos]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// mapHeader resolves header cells to canonical field positions.
// Returns nil when nothing matches, which switches to positional mode.
func mapHeader(header []string) map[string]int {
	lowered := make([]string, len(header))
	for i, h := range header {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}

	index := make(map[string]int)
	for field, names := range headerAliases {
		for _, name := range names {
			for pos, h := range lowered {
				if h == name {
					index[field] = pos
					break
				}
			}
			if _, ok := index[field]; ok {
				break
			}
		}
	}
	if len(index) == 0 {
		return nil
	}
	return index
}
