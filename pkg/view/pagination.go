package view

import "fmt"

// Pagination is pure arithmetic over an already-loaded list: the backend is
// always fetched wholesale and paging happens in memory. Pages are 1-based;
// the page number is clamped whenever the total changes (e.g. after a
// delete empties the last page).
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Start      int // 0-based slice start
	End        int // 0-based slice end (exclusive)
}

// Paginate clamps page into [1, ceil(total/size)] and computes the visible
// window. A non-positive size falls back to 1 so the math stays defined.
func Paginate(totalItems, page, pageSize int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// PageSlice returns the visible window of items.
func PageSlice[T any](items []T, p Pagination) []T {
	if p.Start >= len(items) {
		return nil
	}
	end := p.End
	if end > len(items) {
		end = len(items)
	}
	return items[p.Start:end]
}

// Label renders the "Showing X — Y of N" line under the list.
func (p Pagination) Label() string {
	from := 0
	if p.TotalItems > 0 {
		from = p.Start + 1
	}
	return fmt.Sprintf("Showing %d — %d of %d", from, p.End, p.TotalItems)
}

// Numbers lists every page number for the pager buttons.
func (p Pagination) Numbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

func (p Pagination) PrevPage() int {
	if p.Page > 1 {
		return p.Page - 1
	}
	return 1
}

func (p Pagination) NextPage() int {
	if p.Page < p.TotalPages {
		return p.Page + 1
	}
	return p.TotalPages
}
