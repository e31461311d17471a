package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/maya/grant-tracker/internal/api"
	"github.com/maya/grant-tracker/internal/source"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	reg, err := source.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}

	client := source.NewClient()
	snap := source.NewSnapshot()

	// Prime the snapshot; a failed initial fetch is not fatal, the server
	// starts empty and /refresh can retry.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	stats, err := source.RefreshAll(ctx, client, reg, snap)
	cancel()
	if err != nil {
		log.Printf("Initial fetch failed, starting with empty snapshot: %v", err)
	} else {
		log.Printf("Loaded %d grants from %d sources", stats.GrantsLoaded, stats.SourcesOK)
	}

	srv := api.NewServer(snap, client, reg)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
