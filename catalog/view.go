// Package catalog computes the derived views of the review list: the
// filtered, sorted catalog and the top-rated landing projection. Both are
// pure functions over an already-fetched slice and never touch the store.
package catalog

import (
	"fmt"
	"sort"

	"chillgamer/models"
)

type SortKey string

const (
	SortDefault    SortKey = "default"
	SortRatingAsc  SortKey = "rating-asc"
	SortRatingDesc SortKey = "rating-desc"
	SortYearAsc    SortKey = "year-asc"
	SortYearDesc   SortKey = "year-desc"
)

// GenreAll disables genre filtering.
const GenreAll = "all"

// ParseSortKey maps a query-string value onto a SortKey. An empty value
// means no reordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortDefault:
		return SortDefault, nil
	case SortRatingAsc, SortRatingDesc, SortYearAsc, SortYearDesc:
		return SortKey(s), nil
	}
	return SortDefault, fmt.Errorf("unknown sort key %q", s)
}

// ComputeView filters the review list by genre, then orders it by the sort
// key. Genre matching is exact and case-sensitive; SortDefault preserves
// input order, and all orderings are stable for equal keys. The input slice
// is never mutated.
func ComputeView(all []models.Review, key SortKey, genre string) []models.Review {
	view := make([]models.Review, 0, len(all))
	if genre == GenreAll || genre == "" {
		view = append(view, all...)
	} else {
		for _, r := range all {
			if r.Genre == genre {
				view = append(view, r)
			}
		}
	}

	switch key {
	case SortRatingAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Rating < view[j].Rating })
	case SortRatingDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].Rating > view[j].Rating })
	case SortYearAsc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].PublishingYear < view[j].PublishingYear })
	case SortYearDesc:
		sort.SliceStable(view, func(i, j int) bool { return view[i].PublishingYear > view[j].PublishingYear })
	}

	return view
}

// TopRated returns the n highest-rated reviews, ties broken by input order.
func TopRated(all []models.Review, n int) []models.Review {
	top := ComputeView(all, SortRatingDesc, GenreAll)
	if n < len(top) {
		top = top[:n]
	}
	return top
}
