// Package query is the read-side engine shared by both collections:
// case-insensitive substring matching, stable sorting, and the sort-state
// rule the presentation layer uses when a column is reselected.
package query

import (
	"net/http"
	"sort"
	"strings"
)

// ContainsFold reports whether substr occurs in s, ignoring case. An empty
// query matches everything.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LessFold is a case-insensitive string ordering for sort comparators.
func LessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

type Sort struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc"`
}

func (s Sort) IsZero() bool {
	return s.Field == ""
}

// Select applies the column-reselect rule: picking the current field flips
// the direction, picking a new field resets to ascending.
func (s Sort) Select(field string) Sort {
	if field == "" {
		return s
	}
	if s.Field == field {
		return Sort{Field: field, Desc: !s.Desc}
	}
	return Sort{Field: field}
}

// FromRequest reads sort parameters from a list request. sort_by/sort_dir
// name an explicit order; select_sort applies the reselect rule on top of
// them, letting a stateless client send its previous sort plus the column
// the user clicked.
func FromRequest(r *http.Request) Sort {
	q := r.URL.Query()

	s := Sort{
		Field: strings.TrimSpace(q.Get("sort_by")),
		Desc:  q.Get("sort_dir") == "desc",
	}
	if selected := strings.TrimSpace(q.Get("select_sort")); selected != "" {
		s = s.Select(selected)
	}
	return s
}

// Order sorts items stably so that ties keep their original relative order.
// Desc inverts the comparison rather than reversing the slice, preserving
// stability.
func Order[T any](items []T, desc bool, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
