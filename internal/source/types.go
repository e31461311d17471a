// Package source fetches grant records from configured upstream endpoints
// and normalizes the untrusted payloads into canonical models.Grant values.
package source

import (
	"time"
)

// RawGrant is the untrusted, unnormalized record shape a source returns.
// Numeric and date fields are loosely typed on purpose: upstream exports
// mix numbers, formatted strings ("up to $50,000") and garbage, and a
// malformed value must degrade to "absent", never to a decode failure.
type RawGrant struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Funder      string `json:"funder"`
	Description string `json:"description"`
	ExternalURL string `json:"external_url"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	Amount      any    `json:"amount"`
	AmountMin   any    `json:"amount_min"`
	AmountMax   any    `json:"amount_max"`
	MatchScore  any    `json:"match_score"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// LegacyTotals is the aggregate block some older exports attach instead of
// per-grant statuses. The in-progress figure is derived, not reported, and
// can be inconsistent; the caller decides how to surface that.
type LegacyTotals struct {
	Submitted int `json:"total_submitted"`
	Won       int `json:"total_won"`
	Declined  int `json:"total_declined"`
}

// grantEnvelope is the wrapped payload shape; sources may also return a
// bare JSON array of grants.
type grantEnvelope struct {
	Grants []RawGrant    `json:"grants"`
	Totals *LegacyTotals `json:"totals"`
}

// FetchResult is one source's decoded response.
type FetchResult struct {
	SourceID  string
	Grants    []RawGrant
	Totals    *LegacyTotals
	FetchedAt time.Time
}
