package source

import (
	"sync"
	"time"

	"github.com/maya/grant-tracker/internal/models"
)

// Snapshot holds the current immutable grant snapshot. Records are fetched
// once at startup (or on explicit refresh) and replaced wholesale; readers
// always get their own copy so derived views can never observe a partially
// updated list.
type Snapshot struct {
	mu        sync.RWMutex
	grants    []models.Grant
	totals    *LegacyTotals
	fetchedAt time.Time
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Replace swaps in a freshly normalized grant list.
func (s *Snapshot) Replace(grants []models.Grant, totals *LegacyTotals, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants = grants
	s.totals = totals
	s.fetchedAt = fetchedAt
}

// Grants returns a copy of the current snapshot.
func (s *Snapshot) Grants() []models.Grant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Grant, len(s.grants))
	copy(out, s.grants)
	return out
}

// Totals returns the legacy aggregate block from the last fetch, if the
// upstream provided one.
func (s *Snapshot) Totals() *LegacyTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.totals == nil {
		return nil
	}
	t := *s.totals
	return &t
}

func (s *Snapshot) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

func (s *Snapshot) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.grants)
}
