package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Defaults when fields are unset.
const (
	DefaultAddr       = ":8080"
	DefaultLogLevel   = "info"
	DefaultEChartsURL = "https://cdn.jsdelivr.net/npm/echarts@5.5.1/dist/echarts.min.js"
)

// Config describes a dashboard: where to serve it, which themes to register,
// which charts to create and how to group them.
type Config struct {
	Addr       string      `json:"addr" yaml:"addr" toml:"addr"`
	LogLevel   string      `json:"log_level" yaml:"log_level" toml:"log_level"`
	EChartsURL string      `json:"echarts_url" yaml:"echarts_url" toml:"echarts_url"`
	CORS       CORS        `json:"cors" yaml:"cors" toml:"cors"`
	Themes     []ThemeSpec `json:"themes" yaml:"themes" toml:"themes"`
	Charts     []ChartSpec `json:"charts" yaml:"charts" toml:"charts"`
	Groups     []GroupSpec `json:"groups" yaml:"groups" toml:"groups"`
}

// CORS is opt-in cross-origin configuration for the HTTP API.
type CORS struct {
	Enabled        bool     `json:"enabled" yaml:"enabled" toml:"enabled"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
	AllowedMethods []string `json:"allowed_methods" yaml:"allowed_methods" toml:"allowed_methods"`
	AllowedHeaders []string `json:"allowed_headers" yaml:"allowed_headers" toml:"allowed_headers"`
}

// ThemeSpec points at a theme JSON document. Name defaults to the file name.
type ThemeSpec struct {
	URL  string `json:"url" yaml:"url" toml:"url"`
	Name string `json:"name,omitempty" yaml:"name" toml:"name"`
}

// ChartSpec describes one chart. Title, Subtitle, Trigger and Categories
// adjust the default option; Option is merged over the result.
type ChartSpec struct {
	ID          string         `json:"id" yaml:"id" toml:"id"`
	Element     string         `json:"element" yaml:"element" toml:"element"`
	Theme       string         `json:"theme,omitempty" yaml:"theme" toml:"theme"`
	Title       string         `json:"title,omitempty" yaml:"title" toml:"title"`
	Subtitle    string         `json:"subtitle,omitempty" yaml:"subtitle" toml:"subtitle"`
	Trigger     string         `json:"trigger,omitempty" yaml:"trigger" toml:"trigger"`
	Categories  []string       `json:"categories,omitempty" yaml:"categories" toml:"categories"`
	Option      map[string]any `json:"option,omitempty" yaml:"option" toml:"option"`
	Series      []SeriesSpec   `json:"series" yaml:"series" toml:"series"`
	Resize      bool           `json:"resize,omitempty" yaml:"resize" toml:"resize"`
	TrackEvents []string       `json:"track_events,omitempty" yaml:"track_events" toml:"track_events"`
	Width       int            `json:"width,omitempty" yaml:"width" toml:"width"`
	Height      int            `json:"height,omitempty" yaml:"height" toml:"height"`
}

// SeriesSpec is one series: kind is line, bar, boxplot, pie or donut.
type SeriesSpec struct {
	Kind           string         `json:"kind" yaml:"kind" toml:"kind"`
	Name           string         `json:"name" yaml:"name" toml:"name"`
	Data           any            `json:"data" yaml:"data" toml:"data"`
	Options        map[string]any `json:"options,omitempty" yaml:"options" toml:"options"`
	CornerRounding *bool          `json:"corner_rounding,omitempty" yaml:"corner_rounding" toml:"corner_rounding"`
}

// GroupSpec connects charts (by chart id) into one sync group.
type GroupSpec struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Charts []string `json:"charts" yaml:"charts" toml:"charts"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, cfg.Validate()
}

// Defaults fills unset top-level fields.
func (c *Config) Defaults() {
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.EChartsURL == "" {
		c.EChartsURL = DefaultEChartsURL
	}
}

// Validate checks chart ids are present and unique, and that groups refer
// to declared charts.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Charts))
	for i, ch := range c.Charts {
		if ch.ID == "" {
			return fmt.Errorf("charts[%d]: id is required", i)
		}
		if seen[ch.ID] {
			return fmt.Errorf("charts[%d]: duplicate id %q", i, ch.ID)
		}
		seen[ch.ID] = true
	}
	for i, g := range c.Groups {
		for _, id := range g.Charts {
			if !seen[id] {
				return fmt.Errorf("groups[%d]: unknown chart %q", i, id)
			}
		}
	}
	for i, th := range c.Themes {
		if th.URL == "" {
			return fmt.Errorf("themes[%d]: url is required", i)
		}
	}
	return nil
}

// ElementID returns the element a chart mounts on, defaulting to its id.
func (s ChartSpec) ElementID() string {
	if s.Element != "" {
		return s.Element
	}
	return s.ID
}
