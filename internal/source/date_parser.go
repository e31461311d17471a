package source

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// parseDueDate attempts to parse deadline text in the formats grant sources
// actually emit. Failure is not an error condition for callers: an
// unparsable deadline becomes an absent one.
func parseDueDate(text string) (time.Time, error) {
	text = cleanDateString(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	// ISO forms first, they are the most reliable.
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", text); err == nil {
		return toEndOfDay(t), nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", text); err == nil {
		return t, nil
	}

	formats := []string{
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
		"02 January 2006",
		"2 Jan 2006",
		"01/02/2006",
		"1/2/2006",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, text); err == nil {
			return toEndOfDay(t), nil
		}
	}

	if t := parseDateWithRegex(text); !t.IsZero() {
		return toEndOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", text)
}

// toEndOfDay sets the time to 23:59:59 UTC so a deadline stays "upcoming"
// through its final day.
func toEndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}

var (
	isoDateRe   = regexp.MustCompile(`\b(20\d{2})-(\d{2})-(\d{2})\b`)
	usDateRe    = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(20\d{2})\b`)
	monthDateRe = regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\.?\s+(\d{1,2}),?\s+(20\d{2})\b`)
)

// parseDateWithRegex extracts a date embedded in surrounding prose, e.g.
// "Applications close March 15, 2026 at noon".
func parseDateWithRegex(text string) time.Time {
	if m := isoDateRe.FindStringSubmatch(text); len(m) == 4 {
		if t, err := time.Parse("2006-01-02", m[0]); err == nil {
			return t
		}
	}

	if m := usDateRe.FindStringSubmatch(text); len(m) == 4 {
		dateStr := fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3])
		if t, err := time.Parse("1/2/2006", dateStr); err == nil {
			return t
		}
	}

	if m := monthDateRe.FindStringSubmatch(text); len(m) == 4 {
		dateStr := fmt.Sprintf("%s %s %s", strings.TrimSuffix(m[1], "."), m[2], m[3])
		for _, format := range []string{"January 2 2006", "Jan 2 2006"} {
			if t, err := time.Parse(format, dateStr); err == nil {
				return t
			}
		}
	}

	return time.Time{}
}

// cleanDateString removes the label prefixes sources prepend to deadlines.
func cleanDateString(s string) string {
	prefixes := []string{
		"due date:", "deadline:", "closing date:", "closes:", "expires:", "due:",
	}
	sLower := strings.ToLower(s)
	for _, p := range prefixes {
		if idx := strings.Index(sLower, p); idx != -1 {
			s = s[idx+len(p):]
			sLower = sLower[idx+len(p):]
		}
	}
	return strings.TrimSpace(s)
}
