package source

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/maya/grant-tracker/internal/models"
)

const summaryMaxLen = 280

var htmlPolicy = bluemonday.UGCPolicy()

// FromRaw converts an untrusted RawGrant into a canonical Grant. Malformed
// field values are recovered locally by treating the field as absent; this
// function never fails on data quality.
func FromRaw(raw RawGrant, sourceID string, fetchedAt time.Time) models.Grant {
	g := models.Grant{
		ID:          stableID(sourceID, raw),
		Title:       cleanText(raw.Title),
		Funder:      cleanText(raw.Funder),
		ExternalURL: strings.TrimSpace(raw.ExternalURL),
		Currency:    strings.ToUpper(strings.TrimSpace(raw.Currency)),
		Status:      models.ParseStatus(raw.Status),
		CreatedAt:   fetchedAt,
		UpdatedAt:   fetchedAt,
	}

	if raw.Description != "" {
		g.DescriptionHTML = htmlPolicy.Sanitize(raw.Description)
		g.Description = htmlToText(g.DescriptionHTML)
		g.Summary = truncateText(g.Description, summaryMaxLen)
	}

	if raw.DueDate != "" {
		if dt, err := parseDueDate(raw.DueDate); err == nil {
			g.DueDate = &dt
		}
	}

	g.Amount = coerceAmount(raw.Amount, g.Currency, &g.Currency)
	g.AmountMin = coerceAmount(raw.AmountMin, g.Currency, &g.Currency)
	g.AmountMax = coerceAmount(raw.AmountMax, g.Currency, &g.Currency)
	g.MatchScore = coerceScore(raw.MatchScore)

	if t, err := time.Parse(time.RFC3339, raw.CreatedAt); err == nil {
		g.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, raw.UpdatedAt); err == nil {
		g.UpdatedAt = t
	}

	return g
}

// stableID derives a deterministic UUID from the source-scoped identity so
// a refreshed snapshot keeps grant identity without any persistence.
func stableID(sourceID string, raw RawGrant) uuid.UUID {
	if id, err := uuid.Parse(raw.ID); err == nil {
		return id
	}
	key := raw.ExternalURL
	if key == "" {
		key = sourceID + "/" + raw.ID + "/" + raw.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key))
}

// coerceAmount accepts the numeric and string shapes sources emit for
// amounts. Non-positive and unparsable values are absent. When a formatted
// string carries a currency symbol, the detected currency wins over the
// record default.
func coerceAmount(v any, defaultCurrency string, currency *string) *float64 {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		if val <= 0 {
			return nil
		}
		return &val
	case string:
		min, max, cur := parseAmountText(val, defaultCurrency)
		if cur != "" && currency != nil {
			*currency = cur
		}
		if max > 0 {
			return &max
		}
		if min > 0 {
			return &min
		}
		return nil
	}
	return nil
}

// coerceScore accepts numbers and numeric strings; anything outside 0-100
// is malformed and therefore absent, never clamped.
func coerceScore(v any) *int {
	var score int
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		score = int(val)
		if float64(score) != val {
			return nil
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return nil
		}
		score = n
	default:
		return nil
	}
	if score < 0 || score > 100 {
		return nil
	}
	return &score
}

// htmlToText flattens HTML to plain text, collapsing whitespace, so search
// matching never sees markup.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return cleanText(html)
	}
	return cleanText(doc.Text())
}

// truncateText cuts a string to maxLen, appending ellipsis if truncated.
func truncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen > 3 {
		return text[:maxLen-3] + "..."
	}
	return text[:maxLen]
}

var spaceRe = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
