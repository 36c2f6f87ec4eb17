package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatorWindow(t *testing.T) {
	// 120 total / size 10 => 12 pages
	cases := []struct {
		page int
		want []int
	}{
		{1, []int{1, 2, 3, 4, 5}},
		{2, []int{1, 2, 3, 4, 5}},
		{3, []int{1, 2, 3, 4, 5}},
		{4, []int{2, 3, 4, 5, 6}},
		{6, []int{4, 5, 6, 7, 8}},
		{10, []int{8, 9, 10, 11, 12}},
		{11, []int{8, 9, 10, 11, 12}},
		{12, []int{8, 9, 10, 11, 12}},
	}
	for _, tc := range cases {
		p := NewPaginator(tc.page, 10, 120)
		assert.Equal(t, tc.want, p.Window(), "page %d", tc.page)
	}

	t.Run("fewer pages than the window", func(t *testing.T) {
		p := NewPaginator(1, 10, 25)
		assert.Equal(t, []int{1, 2, 3}, p.Window())
	})

	t.Run("empty result still shows page one", func(t *testing.T) {
		p := NewPaginator(1, 10, 0)
		assert.Equal(t, []int{1}, p.Window())
		assert.Equal(t, 0, p.From())
		assert.Equal(t, 0, p.To())
	})
}

func TestPaginatorClamping(t *testing.T) {
	t.Run("page beyond the end clamps to last", func(t *testing.T) {
		p := NewPaginator(99, 10, 35)
		assert.Equal(t, 4, p.Page)
	})

	t.Run("page below one clamps to first", func(t *testing.T) {
		p := NewPaginator(0, 10, 35)
		assert.Equal(t, 1, p.Page)
	})

	t.Run("WithPage ignores out-of-range moves", func(t *testing.T) {
		p := NewPaginator(2, 10, 35)
		assert.Equal(t, 2, p.WithPage(17).Page)
		assert.Equal(t, 2, p.WithPage(0).Page)
		assert.Equal(t, 4, p.WithPage(4).Page)
	})
}

func TestPaginatorPageSizeChangeResets(t *testing.T) {
	p := NewPaginator(7, 10, 200)
	p = p.WithPageSize(50)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 4, p.TotalPages())
}

func TestPaginatorRange(t *testing.T) {
	p := NewPaginator(3, 10, 35)
	assert.Equal(t, 21, p.From())
	assert.Equal(t, 30, p.To())
	assert.Equal(t, 20, p.Skip())
	assert.Equal(t, "显示第 21 到 30 条，共 35 条", p.RangeText())

	last := NewPaginator(4, 10, 35)
	assert.Equal(t, 35, last.To())
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
}
