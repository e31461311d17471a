package views

import (
	"testing"
	"time"

	"github.com/maya/grant-tracker/internal/models"
)

func TestUpcoming_WindowBoundsAreInclusive(t *testing.T) {
	ref := time.Date(2025, time.January, 1, 9, 30, 0, 0, time.UTC)
	grants := []models.Grant{
		{ID: grantID(1), DueDate: datePtr(2025, time.January, 1)},   // today: in
		{ID: grantID(2), DueDate: datePtr(2025, time.January, 31)},  // day 30: in
		{ID: grantID(3), DueDate: datePtr(2025, time.February, 1)},  // day 31: out
		{ID: grantID(4), DueDate: datePtr(2024, time.December, 31)}, // past: out
		{ID: grantID(5)}, // no deadline: out
	}

	got := Upcoming(grants, ref, 30, 5)
	if !sameIDs(got, 1, 2) {
		t.Fatalf("expected grants 1 and 2, got %v", idsOf(got))
	}
}

func TestUpcoming_OrdersAscendingAndTruncates(t *testing.T) {
	ref := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	grants := []models.Grant{
		{ID: grantID(1), DueDate: datePtr(2025, time.January, 20)},
		{ID: grantID(2), DueDate: datePtr(2025, time.January, 3)},
		{ID: grantID(3), DueDate: datePtr(2025, time.January, 15)},
		{ID: grantID(4), DueDate: datePtr(2025, time.January, 8)},
	}

	got := Upcoming(grants, ref, 30, 3)
	if !sameIDs(got, 2, 4, 3) {
		t.Fatalf("expected 2,4,3 got %v", idsOf(got))
	}
}

func TestUpcoming_ScenarioFixture(t *testing.T) {
	ref := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	got := Upcoming(scenarioGrants(), ref, 30, 5)
	// Grant 1 has no deadline and must never appear.
	if !sameIDs(got, 3, 2) {
		t.Fatalf("expected 3,2 got %v", idsOf(got))
	}
}

func TestTopMatches_ThresholdAndOrder(t *testing.T) {
	got := TopMatches(scenarioGrants(), 70, 5)
	if !sameIDs(got, 1) {
		t.Fatalf("expected grant 1 only, got %v", idsOf(got))
	}
}

func TestTopMatches_ThresholdIsInclusive(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1), MatchScore: scorePtr(70)},
		{ID: grantID(2), MatchScore: scorePtr(69)},
		{ID: grantID(3)},
	}
	got := TopMatches(grants, 70, 5)
	if !sameIDs(got, 1) {
		t.Fatalf("expected grant 1 only, got %v", idsOf(got))
	}
}

func TestTopMatches_TiesKeepInputOrderAndLimitApplies(t *testing.T) {
	grants := []models.Grant{
		{ID: grantID(1), MatchScore: scorePtr(80)},
		{ID: grantID(2), MatchScore: scorePtr(95)},
		{ID: grantID(3), MatchScore: scorePtr(80)},
		{ID: grantID(4), MatchScore: scorePtr(80)},
	}
	got := TopMatches(grants, 70, 3)
	if !sameIDs(got, 2, 1, 3) {
		t.Fatalf("expected 2,1,3 got %v", idsOf(got))
	}
}
