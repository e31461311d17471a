package views

import (
	"time"

	"github.com/google/uuid"

	"github.com/maya/grant-tracker/internal/models"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 23, 59, 59, 0, time.UTC)
	return &t
}

func scorePtr(v int) *int {
	return &v
}

func amountPtr(v float64) *float64 {
	return &v
}

func grantID(n byte) uuid.UUID {
	var id uuid.UUID
	id[15] = n
	return id
}

func idsOf(grants []models.Grant) []byte {
	out := make([]byte, 0, len(grants))
	for _, g := range grants {
		out = append(out, g.ID[15])
	}
	return out
}

func sameIDs(got []models.Grant, want ...byte) bool {
	ids := idsOf(got)
	if len(ids) != len(want) {
		return false
	}
	for i := range ids {
		if ids[i] != want[i] {
			return false
		}
	}
	return true
}

// scenarioGrants is the three-grant fixture used across filter, selector
// and aggregation tests: one won grant with no deadline and a high score,
// one submitted grant with a near deadline and a low score, one won grant
// with the nearest deadline and no score.
func scenarioGrants() []models.Grant {
	return []models.Grant{
		{ID: grantID(1), Title: "Community Health Initiative", Funder: "Wellmark Foundation", Status: models.StatusWon, MatchScore: scorePtr(85)},
		{ID: grantID(2), Title: "Youth Literacy Program", Funder: "Dollar General Literacy", Status: models.StatusSubmitted, DueDate: datePtr(2025, time.January, 10), MatchScore: scorePtr(40)},
		{ID: grantID(3), Title: "Food Security Expansion", Funder: "Feeding America", Status: models.StatusWon, DueDate: datePtr(2025, time.January, 5)},
	}
}
