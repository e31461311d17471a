// Package views derives the table, dashboard, and chart views the UI shows
// from an immutable snapshot of grant records. Every function is a pure
// transform: inputs are never mutated, results are fresh slices, and "now"
// is always an explicit argument.
package views

import (
	"fmt"
	"strings"

	"github.com/maya/grant-tracker/internal/models"
)

// SortField names the grant attribute a list view is ordered by.
type SortField string

const (
	SortByDueDate    SortField = "due_date"
	SortByTitle      SortField = "title"
	SortByFunder     SortField = "funder"
	SortByAmount     SortField = "amount"
	SortByMatchScore SortField = "match_score"
)

// SortDirection is the requested ordering direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Params are the user-controlled inputs that determine which derived view
// of the grant list is produced.
type Params struct {
	SearchTerm string
	Status     models.Status // models.StatusAll disables the status filter
	SortField  SortField
	SortDir    SortDirection
}

// Validate fails fast on unknown sort or filter values. These indicate an
// integration bug in the caller, not bad upstream data, so they are the one
// place this package returns configuration errors.
func (p Params) Validate() error {
	if p.Status != models.StatusAll && !p.Status.Valid() {
		return fmt.Errorf("unknown status filter: %q", p.Status)
	}
	switch p.SortField {
	case SortByDueDate, SortByTitle, SortByFunder, SortByAmount, SortByMatchScore:
	default:
		return fmt.Errorf("unknown sort field: %q", p.SortField)
	}
	switch p.SortDir {
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("unknown sort direction: %q", p.SortDir)
	}
	return nil
}

// List applies the filter stage and then the sort stage in one call.
func List(grants []models.Grant, p Params) ([]models.Grant, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	filtered, err := Filter(grants, p.Status, p.SearchTerm)
	if err != nil {
		return nil, err
	}
	return Sort(filtered, p.SortField, p.SortDir)
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
