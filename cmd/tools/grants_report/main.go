package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/maya/grant-tracker/internal/api"
	"github.com/maya/grant-tracker/internal/models"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8081"
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(baseURL + "/api/v1/dashboard")
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("dashboard request failed: %d", resp.StatusCode)
	}

	var dash api.DashboardResult
	if err := json.NewDecoder(resp.Body).Decode(&dash); err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	fmt.Printf("Dashboard as of %s\n\n", dash.ReferenceDate)

	upcoming := table.NewWriter()
	upcoming.SetOutputMirror(os.Stdout)
	upcoming.SetTitle("Upcoming Deadlines")
	upcoming.AppendHeader(table.Row{"Due", "Title", "Funder", "Status"})
	for _, g := range dash.Upcoming {
		due := ""
		if g.DueDate != nil {
			due = g.DueDate.Format("2006-01-02")
		}
		upcoming.AppendRow(table.Row{due, g.Title, g.Funder, g.Status})
	}
	upcoming.Render()
	fmt.Println()

	matches := table.NewWriter()
	matches.SetOutputMirror(os.Stdout)
	matches.SetTitle("Top Matches")
	matches.AppendHeader(table.Row{"Score", "Title", "Funder", "Status"})
	for _, g := range dash.TopMatches {
		score := ""
		if g.MatchScore != nil {
			score = fmt.Sprintf("%d", *g.MatchScore)
		}
		matches.AppendRow(table.Row{score, g.Title, g.Funder, g.Status})
	}
	matches.Render()
	fmt.Println()

	counts := table.NewWriter()
	counts.SetOutputMirror(os.Stdout)
	counts.SetTitle("Grants by Status")
	counts.AppendHeader(table.Row{"Status", "Count"})
	for _, status := range models.Statuses {
		if n, ok := dash.StatusCounts[status]; ok {
			counts.AppendRow(table.Row{status, n})
		}
	}
	counts.Render()
}
