// Package config handles loading tick.toml configuration files.
//
// Configuration comes from two places: a user-wide file at
// ~/.config/tick/config.toml and an optional tick.toml in the working
// directory. Values defined in the project file win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/ameitner/tick/internal/paths"
)

// Sort profiles restrict which sort keys the UI offers.
const (
	// SortProfileAll allows sorting by due date, creation time, or title.
	SortProfileAll = "all"

	// SortProfileDueDate pins sorting to due date only.
	SortProfileDueDate = "due-date"
)

// DefaultDebounce is the quiet period before a search term commits.
const DefaultDebounce = 300 * time.Millisecond

// Config represents the tick.toml configuration file.
type Config struct {
	Data   Data   `toml:"data"`
	UI     UI     `toml:"ui"`
	Filter Filter `toml:"filter"`
}

// Data contains storage-related configuration.
type Data struct {
	// Dir overrides the directory todos are persisted to.
	Dir string `toml:"dir"`
}

// UI contains presentation-related configuration.
type UI struct {
	// ViewMode is the default view when none has been persisted (list or grid).
	ViewMode string `toml:"view-mode"`

	// SearchDebounceMS is the search commit quiet period in milliseconds.
	SearchDebounceMS int `toml:"search-debounce-ms"`
}

// Filter contains filter-related configuration.
type Filter struct {
	// SortProfile selects the available sort keys ("all" or "due-date").
	SortProfile string `toml:"sort-profile"`
}

// Load loads configuration from the working directory and the global
// config file. Returns an empty config if no config files exist.
func Load(workDir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(workDir, "tick.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Data.Dir = mergeString(projectMeta.IsDefined("data", "dir"), projectCfg.Data.Dir, globalCfg.Data.Dir)
	merged.UI.ViewMode = mergeString(projectMeta.IsDefined("ui", "view-mode"), projectCfg.UI.ViewMode, globalCfg.UI.ViewMode)
	merged.Filter.SortProfile = mergeString(projectMeta.IsDefined("filter", "sort-profile"), projectCfg.Filter.SortProfile, globalCfg.Filter.SortProfile)
	if projectMeta.IsDefined("ui", "search-debounce-ms") {
		merged.UI.SearchDebounceMS = projectCfg.UI.SearchDebounceMS
	} else if globalMeta.IsDefined("ui", "search-debounce-ms") {
		merged.UI.SearchDebounceMS = globalCfg.UI.SearchDebounceMS
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// DataDir resolves the directory todos are persisted to.
func (c *Config) DataDir() (string, error) {
	if c.Data.Dir != "" {
		return c.Data.Dir, nil
	}
	return paths.DefaultDataDir()
}

// SearchDebounce returns the configured quiet period, or the default.
func (c *Config) SearchDebounce() time.Duration {
	if c.UI.SearchDebounceMS > 0 {
		return time.Duration(c.UI.SearchDebounceMS) * time.Millisecond
	}
	return DefaultDebounce
}

// SortProfile returns the configured sort profile, or SortProfileAll.
func (c *Config) SortProfile() string {
	switch c.Filter.SortProfile {
	case SortProfileDueDate:
		return SortProfileDueDate
	default:
		return SortProfileAll
	}
}
