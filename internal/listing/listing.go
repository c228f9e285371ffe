// Package listing provides the filter/sort pipeline applied to the
// in-memory collections (menu items, events, forum posts, gallery
// images). The source slice is never mutated; every query works on a
// fresh copy. Filters compose category -> tags -> search, then a stable
// sort so equal keys keep their seeded order.
package listing

import (
	"sort"
	"strings"
)

// Predicate decides whether a record stays in the result
type Predicate[T any] func(T) bool

// Filter applies predicates in order and returns a new slice
func Filter[T any](src []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		keep := true
		for _, pred := range preds {
			if !pred(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SortStable sorts items in place with a stable order. less may be nil,
// in which case the slice is left as-is.
func SortStable[T any](items []T, less func(a, b T) bool) {
	if less == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

// MatchesSearch reports whether a record matches a search term: empty
// term matches everything, otherwise any designated text field must
// contain the term (case-insensitive) or any tag must equal it.
func MatchesSearch(term string, fields []string, tags []string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, tag := range tags {
		if strings.EqualFold(tag, term) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether a record's category passes the filter.
// An empty or "all" selection matches every record.
func MatchesCategory(selected, category string) bool {
	if selected == "" || selected == "all" {
		return true
	}
	return selected == category
}

// AllTags reports whether every selected tag is satisfied. The has
// callback answers whether the record carries one tag; selection is
// conjunctive, so a single miss rejects the record.
func AllTags(selected []string, has func(tag string) bool) bool {
	for _, tag := range selected {
		if !has(tag) {
			return false
		}
	}
	return true
}
