package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the application lifecycle state of a grant.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusWon        Status = "won"
	StatusDeclined   Status = "declined"

	// StatusAll is a filter sentinel, never stored on a Grant.
	StatusAll Status = "all"
)

// Statuses lists every storable status in lifecycle order.
var Statuses = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusSubmitted,
	StatusWon,
	StatusDeclined,
}

// Valid reports whether s is a storable grant status.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusSubmitted, StatusWon, StatusDeclined:
		return true
	}
	return false
}

// ParseStatus maps raw upstream status text onto a canonical Status.
// Sources disagree on casing and separators ("In Progress", "IN_PROGRESS",
// "in-progress"), so matching is done on a folded form. Unrecognized values
// fall back to not_started: a record nobody has acted on yet.
func ParseStatus(raw string) Status {
	folded := strings.ToLower(strings.TrimSpace(raw))
	folded = strings.NewReplacer(" ", "_", "-", "_").Replace(folded)

	switch folded {
	case "not_started", "notstarted", "new", "":
		return StatusNotStarted
	case "in_progress", "inprogress", "drafting", "active":
		return StatusInProgress
	case "submitted", "pending", "under_review":
		return StatusSubmitted
	case "won", "awarded", "funded":
		return StatusWon
	case "declined", "rejected", "lost":
		return StatusDeclined
	}
	return StatusNotStarted
}

// Grant is a funding opportunity the organization tracks. Optional fields
// use pointers: nil means "not present", which is distinct from a zero
// value everywhere downstream (sorting, windows, histograms).
type Grant struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Funder          string     `json:"funder"`
	Description     string     `json:"description,omitempty"` // plain text
	DescriptionHTML string     `json:"description_html,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	ExternalURL     string     `json:"external_url,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	AmountMin       *float64   `json:"amount_min,omitempty"`
	AmountMax       *float64   `json:"amount_max,omitempty"`
	Currency        string     `json:"currency,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Status          Status     `json:"status"`
	MatchScore      *int       `json:"match_score,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
