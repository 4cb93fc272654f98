package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WajdMHeshme/Style.Loom-Admin-Dashboard/pkg/view"
)

func TestPaginateWindows(t *testing.T) {
	items := make([]int, 14)
	for i := range items {
		items[i] = i
	}

	// Successive pages concatenate back to the full list, in order.
	var got []int
	for page := 1; ; page++ {
		p := view.Paginate(len(items), page, 6)
		got = append(got, view.PageSlice(items, p)...)
		if !p.HasNext() {
			break
		}
	}
	assert.Equal(t, items, got)

	p1 := view.Paginate(14, 1, 6)
	assert.Equal(t, 3, p1.TotalPages)
	assert.Equal(t, 0, p1.Start)
	assert.Equal(t, 6, p1.End)

	p3 := view.Paginate(14, 3, 6)
	assert.Equal(t, 12, p3.Start)
	assert.Equal(t, 14, p3.End)
	assert.False(t, p3.HasNext())
}

func TestPaginateClampsAfterShrink(t *testing.T) {
	// 13 items on page 3, then the last item of the page is deleted: the
	// same requested page must clamp to the new last page.
	p := view.Paginate(13, 3, 6)
	assert.Equal(t, 3, p.Page)

	p = view.Paginate(12, 3, 6)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 6, p.Start)
	assert.Equal(t, 12, p.End)
}

func TestPaginateSmallListHighPage(t *testing.T) {
	// 5 items, page 2 requested: one page total, clamped to page 1 and all
	// five items visible.
	items := []string{"a", "b", "c", "d", "e"}
	p := view.Paginate(len(items), 2, 6)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, items, view.PageSlice(items, p))
	assert.False(t, p.HasPrev())
	assert.False(t, p.HasNext())
}

func TestPaginateEmptyAndBadInput(t *testing.T) {
	p := view.Paginate(0, 5, 6)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, "Showing 0 — 0 of 0", p.Label())

	p = view.Paginate(3, -2, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 1, p.PageSize)
}

func TestPaginateLabelAndNumbers(t *testing.T) {
	p := view.Paginate(14, 2, 6)
	assert.Equal(t, "Showing 7 — 12 of 14", p.Label())
	assert.Equal(t, []int{1, 2, 3}, p.Numbers())
	assert.Equal(t, 1, p.PrevPage())
	assert.Equal(t, 3, p.NextPage())
}
