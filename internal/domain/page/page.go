// Package page windows a ranked list into a fixed head plus a paged
// remainder. The head ("top N") is always visible; pagination only
// applies to entries beyond it.
package page

import "github.com/playmetrics/podium/internal/domain/rank"

// Window is one paging result over a ranked list.
type Window struct {
	Head        []rank.Entry
	WindowItems []rank.Entry
	CurrentPage int
	TotalPages  int
	HasMore     bool
}

// Pages computes the page count for a remainder of the given length:
// ceil(remainder/pageSize), never below one. A view shows "page 1 of 1"
// with zero rows rather than zero pages.
func Pages(remainder, pageSize int) int {
	if pageSize <= 0 || remainder <= 0 {
		return 1
	}
	return (remainder + pageSize - 1) / pageSize
}

// Clamp bounds a requested page to [1, totalPages].
func Clamp(p, totalPages int) int {
	if p < 1 {
		return 1
	}
	if p > totalPages {
		return totalPages
	}
	return p
}

// Split slices ranked into the fixed head and the current page of the
// remainder. current must already be clamped by the caller; out-of-range
// input is a caller error, though slice bounds are still guarded so a
// bad page yields an empty window rather than a panic.
func Split(ranked []rank.Entry, headSize, pageSize, current int) Window {
	if headSize < 0 {
		headSize = 0
	}
	if headSize > len(ranked) {
		headSize = len(ranked)
	}
	head := ranked[:headSize]
	remainder := ranked[headSize:]

	total := Pages(len(remainder), pageSize)
	start := (current - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > len(remainder) {
		start = len(remainder)
	}
	end := start + pageSize
	if end > len(remainder) {
		end = len(remainder)
	}

	return Window{
		Head:        head,
		WindowItems: remainder[start:end],
		CurrentPage: current,
		TotalPages:  total,
		HasMore:     current < total,
	}
}
