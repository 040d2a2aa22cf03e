// Package pagination slices an ordered sequence into fixed-size pages.
// The input ordering is taken as-is; callers guarantee it is total.
package pagination

import "strconv"

// FeedPageSize is the page size used by every feed in the app.
const FeedPageSize = 10

// Page is one slice of an ordered sequence plus its position metadata.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

func (p Page[T]) HasNext() bool     { return p.Number < p.TotalPages }
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }
func (p Page[T]) Next() int         { return p.Number + 1 }
func (p Page[T]) Previous() int     { return p.Number - 1 }

// ParsePage parses a page query parameter; anything unparseable means page 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}

// Paginate slices items into pages of the given size and returns the
// requested page. Out-of-range requests clamp: below 1 behaves as
// page 1, beyond the end returns the last page, never an empty error
// page. The input slice is not copied or reordered; Items aliases it.
func Paginate[T any](items []T, size, requested int) Page[T] {
	if size < 1 {
		size = 1
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages < 1 {
		// an empty sequence still has one (empty) first page
		pages = 1
	}
	number := requested
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	start := (number - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: pages,
	}
}
