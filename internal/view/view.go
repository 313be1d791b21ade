// Package view derives the visible slice of a resource list: case-insensitive
// filtering over the resource's searchable fields, then fixed-size pagination.
// Everything here is a pure function of its inputs.
package view

import "strings"

// PageSize is the fixed page length of every list screen.
const PageSize = 5

// Searcher exposes the fields a list row is matched against.
type Searcher interface {
	SearchFields() []string
}

// Filter returns the subsequence of items whose search fields contain term,
// case-insensitively. An empty term returns items unchanged.
func Filter[S Searcher](items []S, term string) []S {
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	out := make([]S, 0, len(items))
	for _, it := range items {
		for _, f := range it.SearchFields() {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// TotalPages is ceil(n/size), never below 1.
func TotalPages(n, size int) int {
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Page slices out the 1-indexed page. Out-of-range pages yield an empty slice.
func Page[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start < 0 || start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Clamp keeps a requested page inside [1, TotalPages(n, size)].
func Clamp(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(n, size); page > max {
		return max
	}
	return page
}
