package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	records := []Record{
		{"name": "A", "id": "1", "price": 1.0, "is_del": 0},
	}

	cols := Columns(records)
	assert.Equal(t, []string{"id", "name", "price"}, cols, "id pinned first, is_del dropped, rest sorted")

	assert.Nil(t, Columns(nil))
}

func TestBuildTable(t *testing.T) {
	records := []Record{
		{"id": "1", "name": "A"},
		{"id": "2"}, // name missing
	}
	table := BuildTable(records)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Rows[0].Key)
	assert.Equal(t, "2", table.Rows[1].Key)

	// 第二行缺 name 列，渲染占位符
	assert.Equal(t, "name", table.Rows[1].Cells[1].Key)
	assert.Equal(t, "-", table.Rows[1].Cells[1].Content.Text)
}

func TestRowKeyFallsBackToRandom(t *testing.T) {
	table := BuildTable([]Record{{"name": "A"}, {"name": "B"}})
	require.Len(t, table.Rows, 2)
	assert.NotEmpty(t, table.Rows[0].Key)
	assert.NotEqual(t, table.Rows[0].Key, table.Rows[1].Key)
}
