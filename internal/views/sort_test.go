package views

import (
	"testing"
	"time"

	"github.com/maya/grant-tracker/internal/models"
)

func TestSort_DueDateAscendingPutsMissingLast(t *testing.T) {
	got, err := Sort(scenarioGrants(), SortByDueDate, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 3, 2, 1) {
		t.Fatalf("expected order 3,2,1 got %v", idsOf(got))
	}
}

func TestSort_DueDateDescendingKeepsMissingLast(t *testing.T) {
	got, err := Sort(scenarioGrants(), SortByDueDate, SortDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 2, 3, 1) {
		t.Fatalf("expected order 2,3,1 got %v", idsOf(got))
	}
}

func TestSort_IsAPermutation(t *testing.T) {
	in := scenarioGrants()
	got, err := Sort(in, SortByMatchScore, SortDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d grants, got %d", len(in), len(got))
	}
	seen := map[byte]bool{}
	for _, g := range got {
		seen[g.ID[15]] = true
	}
	for _, g := range in {
		if !seen[g.ID[15]] {
			t.Fatalf("grant %d missing from sorted output", g.ID[15])
		}
	}
	// Input untouched.
	if !sameIDs(in, 1, 2, 3) {
		t.Fatalf("input mutated: %v", idsOf(in))
	}
}

func TestSort_StableOnEqualKeys(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1), MatchScore: scorePtr(60)},
		{ID: grantID(2), MatchScore: scorePtr(60)},
		{ID: grantID(3), MatchScore: scorePtr(60)},
	}
	got, err := Sort(grants, SortByMatchScore, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 1, 2, 3) {
		t.Fatalf("equal keys must preserve input order, got %v", idsOf(got))
	}
}

func TestSort_BothAbsentPreserveInputOrder(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1)},
		{ID: grantID(2), MatchScore: scorePtr(10)},
		{ID: grantID(3)},
	}
	got, err := Sort(grants, SortByMatchScore, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 2, 1, 3) {
		t.Fatalf("expected 2,1,3 got %v", idsOf(got))
	}
}

func TestSort_TitleIsCaseInsensitive(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1), Title: "zebra conservation"},
		{ID: grantID(2), Title: "Apple Orchard Revival"},
		{ID: grantID(3), Title: "mango Distribution"},
	}
	got, err := Sort(grants, SortByTitle, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 2, 3, 1) {
		t.Fatalf("expected 2,3,1 got %v", idsOf(got))
	}
}

func TestSort_AmountFallsBackToRange(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1), AmountMax: amountPtr(50000)},
		{ID: grantID(2), Amount: amountPtr(10000)},
		{ID: grantID(3)}, // no amount at all: last
		{ID: grantID(4), AmountMin: amountPtr(25000)},
	}
	got, err := Sort(grants, SortByAmount, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameIDs(got, 2, 4, 1, 3) {
		t.Fatalf("expected 2,4,1,3 got %v", idsOf(got))
	}
}

func TestSort_DayResolutionIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC)
	early := time.Date(2025, time.March, 1, 1, 0, 0, 0, time.UTC)
	grants := []models.Grant{
		{ID: grantID(1), DueDate: &late},
		{ID: grantID(2), DueDate: &early},
	}
	got, err := Sort(grants, SortByDueDate, SortAsc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same calendar day compares equal, so input order holds.
	if !sameIDs(got, 1, 2) {
		t.Fatalf("same-day deadlines must not reorder, got %v", idsOf(got))
	}
}

func TestSort_UnknownFieldFails(t *testing.T) {
	if _, err := Sort(scenarioGrants(), SortField("deadline"), SortAsc); err == nil {
		t.Fatal("expected error for unknown sort field")
	}
	if _, err := Sort(scenarioGrants(), SortByTitle, SortDirection("up")); err == nil {
		t.Fatal("expected error for unknown sort direction")
	}
}
