package views

import (
	"fmt"
	"strings"

	"github.com/maya/grant-tracker/internal/models"
)

// Filter keeps grants matching the status filter AND the search term.
//
// A status other than models.StatusAll keeps only grants with exactly that
// status. A non-empty search term (after trimming) keeps only grants whose
// title, funder, or description contains it case-insensitively; an empty
// description never matches. No match yields an empty slice, not an error.
func Filter(grants []models.Grant, status models.Status, searchTerm string) ([]models.Grant, error) {
	if status != models.StatusAll && !status.Valid() {
		return nil, fmt.Errorf("unknown status filter: %q", status)
	}

	term := normalizeTerm(searchTerm)
	out := make([]models.Grant, 0, len(grants))
	for _, g := range grants {
		if status != models.StatusAll && g.Status != status {
			continue
		}
		if term != "" && !matchesTerm(g, term) {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// matchesTerm reports whether the lowercased term is a substring of the
// grant's title, funder, or description. term must already be normalized.
func matchesTerm(g models.Grant, term string) bool {
	if strings.Contains(strings.ToLower(g.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Funder), term) {
		return true
	}
	if g.Description != "" && strings.Contains(strings.ToLower(g.Description), term) {
		return true
	}
	return false
}
