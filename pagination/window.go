// Package pagination holds the page math and navigation targets for the
// order list view. Everything here is pure; offset and total pages are always
// derived from (page, limit, result count) and never stored.
package pagination

// PageLimit is the fixed number of orders per page.
const PageLimit = 100

// DefaultRadius is how many direct page links show on each side of the
// current page.
const DefaultRadius = 2

// Entry is one slot of the visible page window: either a direct page link or
// a gap marker ("…").
type Entry struct {
	Page int
	Gap  bool
}

// Offset maps a 1-indexed page onto the list offset. Pages below 1 are
// invalid input and clamp to page 1.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// TotalPages is ceil(total/limit); zero results means zero pages.
func TotalPages(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Window returns the bounded page window around current: the pages in
// [current-radius, current+radius] clipped to [1, total], with page 1 and the
// last page pinned at the edges and a gap marker wherever pinning skips at
// least one page. No page number appears twice.
func Window(current, total, radius int) []Entry {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := current - radius
	if start < 1 {
		start = 1
	}
	end := current + radius
	if end > total {
		end = total
	}

	entries := make([]Entry, 0, end-start+5)
	if start > 1 {
		entries = append(entries, Entry{Page: 1})
		if start > 2 {
			entries = append(entries, Entry{Gap: true})
		}
	}
	for p := start; p <= end; p++ {
		entries = append(entries, Entry{Page: p})
	}
	if end < total {
		if end < total-1 {
			entries = append(entries, Entry{Gap: true})
		}
		entries = append(entries, Entry{Page: total})
	}

	return entries
}
