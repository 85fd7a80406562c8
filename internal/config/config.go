package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the unified application configuration
type Config struct {
	Kind             string   `json:"kind"`
	Header           string   `json:"header"`
	DoneText         string   `json:"done_text"`
	CancelText       string   `json:"cancel_text"`
	HeaderBackground string   `json:"header_background"`
	HeaderForeground string   `json:"header_foreground"`
	ItemsFile        string   `json:"items_file"`
	Items            []string `json:"items"`
	LogDir           string   `json:"log_dir"`
	PointsPerColumn  float64  `json:"points_per_column"`
	PointsPerRow     float64  `json:"points_per_row"`
}

// Settings represents the config file structure
type Settings struct {
	Kind             string   `json:"kind,omitempty"`
	Header           string   `json:"header,omitempty"`
	DoneText         string   `json:"done_text,omitempty"`
	CancelText       string   `json:"cancel_text,omitempty"`
	HeaderBackground string   `json:"header_background,omitempty"`
	HeaderForeground string   `json:"header_foreground,omitempty"`
	ItemsFile        string   `json:"items_file,omitempty"`
	Items            []string `json:"items,omitempty"`
	LogDir           string   `json:"log_dir,omitempty"`
	PointsPerColumn  float64  `json:"points_per_column,omitempty"`
	PointsPerRow     float64  `json:"points_per_row,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Kind       string
	Header     string
	DoneText   string
	CancelText string
	ItemsFile  string
	Items      []string
	LogDir     string
}

var globalConfig *Config

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Kind:             "date",
		Header:           "Pick a date",
		DoneText:         "Done",
		CancelText:       "Cancel",
		HeaderBackground: "#FFFFFF",
		HeaderForeground: "#000000",
		PointsPerColumn:  8,
		PointsPerRow:     16,
	}
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := Defaults()

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			cfg.apply(*fileConfig)
		}
	}

	// Priority 2: Environment variables override config file
	if v := os.Getenv("MODALPICKER_KIND"); v != "" {
		cfg.Kind = v
	}
	if v := os.Getenv("MODALPICKER_HEADER"); v != "" {
		cfg.Header = v
	}
	if v := os.Getenv("MODALPICKER_ITEMS"); v != "" {
		cfg.ItemsFile = expandPath(v)
	}
	if v := os.Getenv("MODALPICKER_LOG_DIR"); v != "" {
		cfg.LogDir = expandPath(v)
	}
	if v := os.Getenv("MODALPICKER_CELL"); v != "" {
		if cols, rows, ok := parseCell(v); ok {
			cfg.PointsPerColumn = cols
			cfg.PointsPerRow = rows
		}
	}

	// Priority 1: CLI flags override everything
	if flags.Kind != "" {
		cfg.Kind = flags.Kind
	}
	if flags.Header != "" {
		cfg.Header = flags.Header
	}
	if flags.DoneText != "" {
		cfg.DoneText = flags.DoneText
	}
	if flags.CancelText != "" {
		cfg.CancelText = flags.CancelText
	}
	if flags.ItemsFile != "" {
		cfg.ItemsFile = expandPath(flags.ItemsFile)
	}
	if len(flags.Items) > 0 {
		cfg.Items = flags.Items
	}
	if flags.LogDir != "" {
		cfg.LogDir = expandPath(flags.LogDir)
	}

	globalConfig = cfg
	return cfg, nil
}

func (c *Config) apply(s Settings) {
	if s.Kind != "" {
		c.Kind = s.Kind
	}
	if s.Header != "" {
		c.Header = s.Header
	}
	if s.DoneText != "" {
		c.DoneText = s.DoneText
	}
	if s.CancelText != "" {
		c.CancelText = s.CancelText
	}
	if s.HeaderBackground != "" {
		c.HeaderBackground = s.HeaderBackground
	}
	if s.HeaderForeground != "" {
		c.HeaderForeground = s.HeaderForeground
	}
	if s.ItemsFile != "" {
		c.ItemsFile = expandPath(s.ItemsFile)
	}
	if len(s.Items) > 0 {
		c.Items = s.Items
	}
	if s.LogDir != "" {
		c.LogDir = expandPath(s.LogDir)
	}
	if s.PointsPerColumn > 0 {
		c.PointsPerColumn = s.PointsPerColumn
	}
	if s.PointsPerRow > 0 {
		c.PointsPerRow = s.PointsPerRow
	}
}

// Get returns the loaded config
func Get() *Config {
	return globalConfig
}

// getConfigPath returns the path to the configuration file.
// MODALPICKER_CONFIG overrides the default location.
func getConfigPath() (string, error) {
	if p := os.Getenv("MODALPICKER_CONFIG"); p != "" {
		return expandPath(p), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "modalpicker", "config.json"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	def := Defaults()
	settings := Settings{
		Kind:             def.Kind,
		Header:           def.Header,
		DoneText:         def.DoneText,
		CancelText:       def.CancelText,
		HeaderBackground: def.HeaderBackground,
		HeaderForeground: def.HeaderForeground,
		PointsPerColumn:  def.PointsPerColumn,
		PointsPerRow:     def.PointsPerRow,
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// ParseCommaSeparated splits a comma-separated string into a slice
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// parseCell reads a "COLSxROWS" cell size in points, e.g. "8x16".
func parseCell(s string) (float64, float64, bool) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, false
	}
	cols, err := strconv.ParseFloat(w, 64)
	if err != nil || cols <= 0 {
		return 0, 0, false
	}
	rows, err := strconv.ParseFloat(h, 64)
	if err != nil || rows <= 0 {
		return 0, 0, false
	}
	return cols, rows, true
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
