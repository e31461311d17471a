package views

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/maya/grant-tracker/internal/models"
)

// Sort returns a new slice ordered by field and direction; the input is
// left untouched. The sort is stable: grants with equal keys keep their
// relative input order.
//
// Absent values always order last, in both directions, so incomplete
// records sit at the bottom of the table no matter how the user flips the
// sort. Direction therefore only inverts the present-vs-present comparison.
func Sort(grants []models.Grant, field SortField, dir SortDirection) ([]models.Grant, error) {
	switch dir {
	case SortAsc, SortDesc:
	default:
		return nil, fmt.Errorf("unknown sort direction: %q", dir)
	}

	cmp, err := comparatorFor(field)
	if err != nil {
		return nil, err
	}

	out := make([]models.Grant, len(grants))
	copy(out, grants)

	sort.SliceStable(out, func(i, j int) bool {
		c, presentI, presentJ := cmp(out[i], out[j])
		if presentI != presentJ {
			return presentI // whichever has a value comes first
		}
		if !presentI {
			return false // both absent: equal, stability keeps input order
		}
		if dir == SortDesc {
			c = -c
		}
		return c < 0
	})
	return out, nil
}

// comparator compares two grants on one field. c is the ascending ordering
// of the two values and only meaningful when both are present.
type comparator func(a, b models.Grant) (c int, presentA, presentB bool)

func comparatorFor(field SortField) (comparator, error) {
	switch field {
	case SortByDueDate:
		return func(a, b models.Grant) (int, bool, bool) {
			if a.DueDate == nil || b.DueDate == nil {
				return 0, a.DueDate != nil, b.DueDate != nil
			}
			return compareDates(*a.DueDate, *b.DueDate), true, true
		}, nil
	case SortByAmount:
		return func(a, b models.Grant) (int, bool, bool) {
			va, pa := sortAmount(a)
			vb, pb := sortAmount(b)
			return compareFloats(va, vb), pa, pb
		}, nil
	case SortByMatchScore:
		return func(a, b models.Grant) (int, bool, bool) {
			var va, vb int
			if a.MatchScore != nil {
				va = *a.MatchScore
			}
			if b.MatchScore != nil {
				vb = *b.MatchScore
			}
			return va - vb, a.MatchScore != nil, b.MatchScore != nil
		}, nil
	case SortByTitle:
		col := newCollator()
		return func(a, b models.Grant) (int, bool, bool) {
			return col.CompareString(a.Title, b.Title), a.Title != "", b.Title != ""
		}, nil
	case SortByFunder:
		col := newCollator()
		return func(a, b models.Grant) (int, bool, bool) {
			return col.CompareString(a.Funder, b.Funder), a.Funder != "", b.Funder != ""
		}, nil
	}
	return nil, fmt.Errorf("unknown sort field: %q", field)
}

// newCollator builds a fresh locale-aware case-insensitive collator per
// sort call; collate.Collator carries internal buffers and must not be
// shared across concurrent sorts.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// compareDates orders at day resolution in UTC so wall-clock components and
// timezone offsets on upstream timestamps cannot reorder same-day deadlines.
func compareDates(a, b time.Time) int {
	da, db := dateOnly(a), dateOnly(b)
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	return 0
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// sortAmount picks the numeric key for amount sorting: the single award
// amount when the source gave one, otherwise the top of the range, then
// the bottom.
func sortAmount(g models.Grant) (float64, bool) {
	switch {
	case g.Amount != nil:
		return *g.Amount, true
	case g.AmountMax != nil:
		return *g.AmountMax, true
	case g.AmountMin != nil:
		return *g.AmountMin, true
	}
	return 0, false
}
