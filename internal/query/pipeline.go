// Package query implements the pure sort/filter pipeline over expense
// sequences. Both stages are independently skippable and never touch the
// store; the navigation layer feeds them slices from live queries.
package query

import (
	"sort"

	"budgetbook/internal/model"
)

// SortKey selects the ordering applied before filtering.
type SortKey int

const (
	SortNone SortKey = iota
	SortDateAscending
	SortAmountDescending
	SortCategoryAscending
)

// String returns the display label for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortDateAscending:
		return "Sort by Date"
	case SortAmountDescending:
		return "Sort by Amount"
	case SortCategoryAscending:
		return "Sort by Category"
	default:
		return "No Sorting"
	}
}

// FilterMode selects the predicate applied after sorting.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterDateRange
	FilterCategory
)

// Filter narrows a sorted sequence. Start/End apply in FilterDateRange mode
// (inclusive on both ends); CategoryID applies in FilterCategory mode.
type Filter struct {
	Mode       FilterMode
	Start, End model.Date
	CategoryID int
}

// Options combines the two pipeline stages.
type Options struct {
	Sort   SortKey
	Filter Filter
}

// Apply sorts then filters the expenses, returning a new slice. Sorting is
// stable so ties keep their incoming order; display order feeds
// selection-by-index downstream and must not shuffle between equal keys.
func Apply(expenses []model.Expense, opts Options) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)

	switch opts.Sort {
	case SortDateAscending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date.Time)
		})
	case SortAmountDescending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount.GreaterThan(out[j].Amount.Decimal)
		})
	case SortCategoryAscending:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CategoryName() < out[j].CategoryName()
		})
	}

	switch opts.Filter.Mode {
	case FilterDateRange:
		kept := out[:0]
		for _, e := range out {
			if e.Date.WithinRange(opts.Filter.Start, opts.Filter.End) {
				kept = append(kept, e)
			}
		}
		out = kept
	case FilterCategory:
		kept := out[:0]
		for _, e := range out {
			if e.CategoryID == opts.Filter.CategoryID {
				kept = append(kept, e)
			}
		}
		out = kept
	}

	return out
}
