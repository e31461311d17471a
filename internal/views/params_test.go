package views

import (
	"testing"

	"github.com/maya/grant-tracker/internal/models"
)

func TestParamsValidate(t *testing.T) {
	ok := Params{Status: models.StatusAll, SortField: SortByDueDate, SortDir: SortAsc}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []Params{
		{Status: models.Status("shortlisted"), SortField: SortByDueDate, SortDir: SortAsc},
		{Status: models.StatusAll, SortField: SortField("deadline"), SortDir: SortAsc},
		{Status: models.StatusAll, SortField: SortByDueDate, SortDir: SortDirection("descending")},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestList_FiltersThenSorts(t *testing.T) {
	got, err := List(scenarioGrants(), Params{
		Status:    models.StatusWon,
		SortField: SortByDueDate,
		SortDir:   SortAsc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Grant 3 has the only deadline among won grants; grant 1 sorts last.
	if !sameIDs(got, 3, 1) {
		t.Fatalf("expected 3,1 got %v", idsOf(got))
	}
}
