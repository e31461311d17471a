package views

import (
	"fmt"
	"sort"

	"github.com/maya/grant-tracker/internal/models"
)

// DefaultBucketWidth is the histogram bucket width used by the dashboard.
const DefaultBucketWidth = 10

// CountByStatus counts grants per status. Every grant lands in exactly one
// bucket; statuses with zero grants are omitted — the consuming chart fills
// in zero-valued series itself.
func CountByStatus(grants []models.Grant) map[models.Status]int {
	counts := make(map[models.Status]int)
	for _, g := range grants {
		counts[g.Status]++
	}
	return counts
}

// ScoreBucket is one half-open match-score interval [Lower, Upper) and the
// number of grants whose score falls inside it.
type ScoreBucket struct {
	Lower int    `json:"lower"`
	Upper int    `json:"upper"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// BucketByMatchScore groups present match scores into half-open buckets
// [k*width, (k+1)*width). Grants without a score contribute to no bucket.
// Buckets come back in ascending numeric order; Go maps do not preserve
// order, so the histogram is a slice.
func BucketByMatchScore(grants []models.Grant, width int) ([]ScoreBucket, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid bucket width: %d", width)
	}

	counts := make(map[int]int)
	for _, g := range grants {
		if g.MatchScore == nil {
			continue
		}
		counts[*g.MatchScore/width]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	buckets := make([]ScoreBucket, 0, len(keys))
	for _, k := range keys {
		lower := k * width
		upper := lower + width
		buckets = append(buckets, ScoreBucket{
			Lower: lower,
			Upper: upper,
			Label: fmt.Sprintf("%d-%d", lower, upper-1),
			Count: counts[k],
		})
	}
	return buckets, nil
}

// InProgressFromTotals derives an in-progress count from the aggregate
// figures some legacy exports report instead of per-grant statuses. A
// negative result means the upstream figures are inconsistent; that is an
// upstream data-quality error to surface, never to clamp away.
func InProgressFromTotals(submitted, won, declined int) (int, error) {
	inProgress := submitted - won - declined
	if inProgress < 0 {
		return 0, fmt.Errorf("inconsistent upstream totals: submitted=%d won=%d declined=%d yields in_progress=%d",
			submitted, won, declined, inProgress)
	}
	return inProgress, nil
}
