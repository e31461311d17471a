package source

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/maya/grant-tracker/internal/models"
)

// RefreshStats summarizes one refresh pass over the registry.
type RefreshStats struct {
	SourcesOK     int      `json:"sources_ok"`
	SourcesFailed int      `json:"sources_failed"`
	GrantsLoaded  int      `json:"grants_loaded"`
	Errors        []string `json:"errors,omitempty"`
}

// RefreshAll fetches every registry source, normalizes the records, and
// replaces the snapshot. A failing source is logged and skipped; the
// refresh only fails when no source could be fetched at all.
func RefreshAll(ctx context.Context, client *Client, reg *Registry, snap *Snapshot) (*RefreshStats, error) {
	stats := &RefreshStats{}
	var merged []models.Grant
	seen := make(map[uuid.UUID]bool)
	var totals *LegacyTotals

	for _, src := range reg.Sources {
		result, err := client.Fetch(ctx, src)
		if err != nil {
			stats.SourcesFailed++
			stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %v", src.ID, err))
			log.Printf("refresh: source %s failed: %v", src.ID, err)
			continue
		}

		for _, raw := range result.Grants {
			g := FromRaw(raw, src.ID, result.FetchedAt)
			if g.Currency == "" {
				g.Currency = src.Currency
			}
			if seen[g.ID] {
				continue // first source wins on duplicate identity
			}
			seen[g.ID] = true
			merged = append(merged, g)
			stats.GrantsLoaded++
		}
		stats.SourcesOK++

		if result.Totals != nil {
			totals = result.Totals
		}
	}

	if stats.SourcesOK == 0 && len(reg.Sources) > 0 {
		return stats, fmt.Errorf("all %d sources failed", len(reg.Sources))
	}

	snap.Replace(merged, totals, time.Now().UTC())
	return stats, nil
}
