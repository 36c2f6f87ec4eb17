package view

import (
	"sort"

	"github.com/google/uuid"
)

// Record is one row of upstream data; fields are dynamically typed and no
// schema is enforced on this side.
type Record = map[string]any

type Cell struct {
	Key     string
	Content DisplayContent
}

type Row struct {
	Key   string // stable row key for the template
	Cells []Cell
}

// Table is a fully rendered dynamic table.
type Table struct {
	Columns []string
	Rows    []Row
}

// Columns derives the column set from the first record. Internal bookkeeping
// fields are dropped. Map iteration order is not stable, so keys are sorted
// with "id" pinned first to keep the table deterministic between requests.
func Columns(records []Record) []string {
	if len(records) == 0 {
		return nil
	}
	keys := make([]string, 0, len(records[0]))
	for k := range records[0] {
		if k == "is_del" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == "id" {
			return true
		}
		if keys[j] == "id" {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// BuildTable renders records into display cells using the column set of the
// first record. Rows missing a column render the placeholder.
func BuildTable(records []Record) Table {
	cols := Columns(records)
	t := Table{Columns: cols, Rows: make([]Row, 0, len(records))}
	for _, rec := range records {
		row := Row{Key: rowKey(rec), Cells: make([]Cell, 0, len(cols))}
		for _, col := range cols {
			row.Cells = append(row.Cells, Cell{Key: col, Content: RenderCell(col, rec[col])})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func rowKey(rec Record) string {
	if id := stringify(rec["id"]); id != "" {
		return id
	}
	return uuid.NewString()
}
