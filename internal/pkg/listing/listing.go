package listing

import (
	"sort"
	"strings"
)

// Page size options exposed to the dashboard tables. Anything else falls
// back to DefaultPageSize instead of failing the request.
var PageSizes = []int{5, 10, 20, 50}

const DefaultPageSize = 10

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
	SortNone SortOrder = "none"
)

// Query carries the table state of one dashboard list: a debounced search
// term, a single active sort key, and a page cursor.
type Query struct {
	Search    string
	SortBy    string
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// Result is one computed page plus the totals the table header needs.
// TotalCount counts the filtered set, not the visible page.
type Result[T any] struct {
	Items      []T
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

// Fields extracts the searchable/sortable string projection of an item.
// Only keys present in the returned map can match a search or a sort key.
type Fields[T any] func(item T) map[string]string

// Apply runs the three list operators in their fixed order:
// filter, then sort, then paginate. The input slice is never mutated.
func Apply[T any](items []T, q Query, fields Fields[T]) Result[T] {
	filtered := Filter(items, q.Search, fields)
	sorted := Sort(filtered, q.SortBy, q.SortOrder, fields)
	return Paginate(sorted, q)
}

// Filter keeps items where any whitelisted field contains the search term,
// case-insensitively. An empty term is the identity.
func Filter[T any](items []T, search string, fields Fields[T]) []T {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, v := range fields(item) {
			if strings.Contains(strings.ToLower(v), term) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Sort orders items by one key, case-insensitive lexicographic on the
// stringified field value. Missing fields sort as the empty string, so they
// come first ascending. SortNone (or an empty key) keeps the input order.
func Sort[T any](items []T, key string, order SortOrder, fields Fields[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	if key == "" || order == SortNone || order == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(fields(out[i])[key])
		b := strings.ToLower(fields(out[j])[key])
		if order == SortDesc {
			return a > b
		}
		return a < b
	})
	return out
}

// Paginate slices one page out of the (already filtered and sorted) set.
func Paginate[T any](items []T, q Query) Result[T] {
	size := q.PageSize
	if !validPageSize(size) {
		size = DefaultPageSize
	}

	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	// Out-of-range page requests clamp instead of erroring, so navigating
	// past the last page is a no-op for the caller.
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result[T]{
		Items:      items[start:end],
		TotalCount: total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}
}

func validPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
