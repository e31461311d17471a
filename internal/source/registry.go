package source

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/maya/grant-tracker/internal/views"
)

//go:embed config/sources.yaml
var sourcesYAML embed.FS

// Registry holds the configured grant sources and the default view
// parameters the dashboard uses.
type Registry struct {
	Sources []SourceConfig `yaml:"sources"`
	Views   ViewDefaults   `yaml:"views"`
}

// FetchConfig defines HTTP fetching configuration for a source.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"` // Default: 30
	MaxRetries     int `yaml:"max_retries,omitempty"`     // Default: 3
}

// SourceConfig defines a single grant data source.
type SourceConfig struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	URL         string      `yaml:"url"`
	Currency    string      `yaml:"currency,omitempty"` // default for unlabeled amounts
	Description string      `yaml:"description,omitempty"`
	Fetch       FetchConfig `yaml:"fetch,omitempty"`
}

// ViewDefaults are the dashboard parameters, overridable per request.
type ViewDefaults struct {
	UpcomingWindowDays int `yaml:"upcoming_window_days"`
	UpcomingLimit      int `yaml:"upcoming_limit"`
	MatchThreshold     int `yaml:"match_threshold"`
	MatchLimit         int `yaml:"match_limit"`
	BucketWidth        int `yaml:"bucket_width"`
}

// LoadRegistry reads the source registry from SOURCES_CONFIG if set,
// otherwise from the embedded default config.
func LoadRegistry() (*Registry, error) {
	var data []byte
	var err error

	if path := os.Getenv("SOURCES_CONFIG"); path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read SOURCES_CONFIG %s: %w", path, err)
		}
	} else {
		data, err = sourcesYAML.ReadFile("config/sources.yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded sources config: %w", err)
		}
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	reg.Views.applyDefaults()
	for i := range reg.Sources {
		if reg.Sources[i].Fetch.TimeoutSeconds <= 0 {
			reg.Sources[i].Fetch.TimeoutSeconds = 30
		}
		if reg.Sources[i].Fetch.MaxRetries < 0 {
			reg.Sources[i].Fetch.MaxRetries = 0
		}
		if reg.Sources[i].URL == "" {
			return nil, fmt.Errorf("source %q has no url", reg.Sources[i].ID)
		}
	}

	return &reg, nil
}

func (v *ViewDefaults) applyDefaults() {
	if v.UpcomingWindowDays <= 0 {
		v.UpcomingWindowDays = views.DefaultUpcomingWindowDays
	}
	if v.UpcomingLimit <= 0 {
		v.UpcomingLimit = views.DefaultUpcomingLimit
	}
	if v.MatchThreshold <= 0 {
		v.MatchThreshold = views.DefaultMatchThreshold
	}
	if v.MatchLimit <= 0 {
		v.MatchLimit = views.DefaultMatchLimit
	}
	if v.BucketWidth <= 0 {
		v.BucketWidth = views.DefaultBucketWidth
	}
}
