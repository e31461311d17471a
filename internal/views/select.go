package views

import (
	"sort"
	"time"

	"github.com/maya/grant-tracker/internal/models"
)

// Defaults for the dashboard selectors. Callers (API handlers, CLI) may
// override them from the view registry.
const (
	DefaultUpcomingWindowDays = 30
	DefaultUpcomingLimit      = 5
	DefaultMatchThreshold     = 70
	DefaultMatchLimit         = 5
)

// Upcoming returns at most limit grants whose due date falls inside the
// inclusive day-resolution window [referenceDate, referenceDate+windowDays],
// nearest deadline first. Grants without a due date are never included.
//
// referenceDate is an explicit input rather than time.Now() so the result
// is deterministic for a given snapshot and parameters.
func Upcoming(grants []models.Grant, referenceDate time.Time, windowDays, limit int) []models.Grant {
	start := dateOnly(referenceDate)
	end := start.AddDate(0, 0, windowDays)

	out := make([]models.Grant, 0, limit)
	for _, g := range grants {
		if g.DueDate == nil {
			continue
		}
		due := dateOnly(*g.DueDate)
		if due.Before(start) || due.After(end) {
			continue
		}
		out = append(out, g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compareDates(*out[i].DueDate, *out[j].DueDate) < 0
	})

	return truncate(out, limit)
}

// TopMatches returns at most limit grants whose match score is present and
// at least threshold, best score first. Ties keep their input order.
func TopMatches(grants []models.Grant, threshold, limit int) []models.Grant {
	out := make([]models.Grant, 0, limit)
	for _, g := range grants {
		if g.MatchScore == nil || *g.MatchScore < threshold {
			continue
		}
		out = append(out, g)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].MatchScore > *out[j].MatchScore
	})

	return truncate(out, limit)
}

func truncate(grants []models.Grant, limit int) []models.Grant {
	if limit > 0 && len(grants) > limit {
		return grants[:limit]
	}
	return grants
}
