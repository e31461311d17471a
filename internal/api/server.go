package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/maya/grant-tracker/internal/models"
	"github.com/maya/grant-tracker/internal/source"
	"github.com/maya/grant-tracker/internal/views"
)

type Server struct {
	Echo     *echo.Echo
	Snapshot *source.Snapshot
	Client   *source.Client
	Registry *source.Registry
}

func NewServer(snap *source.Snapshot, client *source.Client, reg *source.Registry) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Echo:     e,
		Snapshot: snap,
		Client:   client,
		Registry: reg,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/grants", s.handleListGrants)
	api.GET("/grants/:id", s.handleGetGrant)
	api.GET("/dashboard", s.handleDashboard)
	api.GET("/stats", s.handleStats)
	api.POST("/refresh", s.handleRefresh)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListResult is the grants list response.
type ListResult struct {
	Grants    []models.Grant `json:"grants"`
	Total     int            `json:"total"`
	FetchedAt time.Time      `json:"fetched_at"`
}

func (s *Server) handleListGrants(c echo.Context) error {
	params := views.Params{
		SearchTerm: c.QueryParam("q"),
		Status:     models.StatusAll,
		SortField:  views.SortByDueDate,
		SortDir:    views.SortAsc,
	}
	if v := c.QueryParam("status"); v != "" {
		params.Status = models.Status(v)
	}
	if v := c.QueryParam("sort"); v != "" {
		params.SortField = views.SortField(v)
	}
	if v := c.QueryParam("dir"); v != "" {
		params.SortDir = views.SortDirection(v)
	}

	grants, err := views.List(s.Snapshot.Grants(), params)
	if err != nil {
		// Unknown sort/status values are caller bugs, not data problems.
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, ListResult{
		Grants:    grants,
		Total:     len(grants),
		FetchedAt: s.Snapshot.FetchedAt(),
	})
}

func (s *Server) handleGetGrant(c echo.Context) error {
	id := c.Param("id")
	for _, g := range s.Snapshot.Grants() {
		if g.ID.String() == id {
			return c.JSON(http.StatusOK, g)
		}
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
}

// DashboardResult bundles the derived views the dashboard page renders.
type DashboardResult struct {
	ReferenceDate  string                `json:"reference_date"`
	Upcoming       []models.Grant        `json:"upcoming"`
	TopMatches     []models.Grant        `json:"top_matches"`
	StatusCounts   map[models.Status]int `json:"status_counts"`
	ScoreHistogram []views.ScoreBucket   `json:"score_histogram"`
}

func (s *Server) handleDashboard(c echo.Context) error {
	defaults := s.Registry.Views

	windowDays := defaults.UpcomingWindowDays
	if v, err := strconv.Atoi(c.QueryParam("window_days")); err == nil && v > 0 && v <= 365 {
		windowDays = v
	}
	limit := defaults.UpcomingLimit
	matchLimit := defaults.MatchLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
		matchLimit = v
	}
	threshold := defaults.MatchThreshold
	if v, err := strconv.Atoi(c.QueryParam("min_score")); err == nil && v >= 0 && v <= 100 {
		threshold = v
	}
	bucketWidth := defaults.BucketWidth
	if v, err := strconv.Atoi(c.QueryParam("bucket_width")); err == nil && v > 0 && v <= 100 {
		bucketWidth = v
	}

	// The processor takes the reference date explicitly; it is resolved
	// here, once per request. as_of exists for reproducible results.
	referenceDate := time.Now().UTC()
	if raw := strings.TrimSpace(c.QueryParam("as_of")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "as_of must be YYYY-MM-DD"})
		}
		referenceDate = parsed
	}

	grants := s.Snapshot.Grants()

	histogram, err := views.BucketByMatchScore(grants, bucketWidth)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, DashboardResult{
		ReferenceDate:  referenceDate.Format("2006-01-02"),
		Upcoming:       views.Upcoming(grants, referenceDate, windowDays, limit),
		TopMatches:     views.TopMatches(grants, threshold, matchLimit),
		StatusCounts:   views.CountByStatus(grants),
		ScoreHistogram: histogram,
	})
}

func (s *Server) handleStats(c echo.Context) error {
	grants := s.Snapshot.Grants()
	counts := views.CountByStatus(grants)

	stats := map[string]interface{}{
		"total":         len(grants),
		"status_counts": counts,
		"fetched_at":    s.Snapshot.FetchedAt(),
	}

	// Legacy exports report aggregate figures instead of per-grant status;
	// cross-check them and surface inconsistencies rather than clamping.
	if totals := s.Snapshot.Totals(); totals != nil {
		inProgress, err := views.InProgressFromTotals(totals.Submitted, totals.Won, totals.Declined)
		if err != nil {
			stats["warnings"] = []string{err.Error()}
		} else {
			stats["legacy_in_progress"] = inProgress
		}
	}

	return c.JSON(http.StatusOK, stats)
}

func (s *Server) handleRefresh(c echo.Context) error {
	refreshStats, err := source.RefreshAll(c.Request().Context(), s.Client, s.Registry, s.Snapshot)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"error": err.Error(),
			"stats": refreshStats,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Refresh complete",
		"stats":   refreshStats,
	})
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
