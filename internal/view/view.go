// Package view derives the client-facing list projection of a post
// collection: a free-text search over names combined with a lexicographic
// sort. The derivation is a pure function of (collection, term, order) and
// is recomputed in full on every call; collections are small enough that
// no incremental index is warranted.
package view

import (
	"sort"
	"strings"

	"blogapi/internal/model"
)

// SortOrder selects the direction of the name sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps a user-supplied string to a SortOrder,
// defaulting to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// Apply filters posts by case-insensitive substring match of term against
// Name, then sorts by Name in the given order (case-insensitive, ties
// broken by the original ordering). The input slice is never mutated; an
// empty term matches everything.
func Apply(posts []model.Post, term string, order SortOrder) []model.Post {
	needle := strings.ToLower(term)

	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a := strings.ToLower(out[i].Name)
		b := strings.ToLower(out[j].Name)
		if order == SortDesc {
			return a > b
		}
		return a < b
	})

	return out
}
