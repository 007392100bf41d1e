// internal/appconfig/appconfig.go
// Package appconfig describes the taskplot configuration and the defaults applied to it.
package appconfig

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/taskplot.json"
	// DefaultFormat is the image format written when none is configured.
	DefaultFormat = "eps"
	// defaultWidthInches and defaultHeightInches give a 4x5 inch figure.
	defaultWidthInches  = 4.0
	defaultHeightInches = 5.0
	// defaultSeparationFraction is the share of the value range used as the de-overlap
	// distance when none is configured.
	defaultSeparationFraction = 0.02
)

// Config represents the top-level application configuration.
type Config struct {
	Debug         bool     `json:"debug"`
	LogFile       string   `json:"logFile,omitempty"`
	OutputDir     string   `json:"outputDir,omitempty"`
	Format        string   `json:"format,omitempty"`
	Width         float64  `json:"width,omitempty"`
	Height        float64  `json:"height,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	MinSeparation float64  `json:"minSeparation,omitempty"`
	MaxIterations int      `json:"maxIterations,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	ConfigPath    string   `json:"-"`
}

// OutputFormat returns the configured image format, falling back to eps.
func (c Config) OutputFormat() string {
	if f := strings.ToLower(strings.TrimSpace(c.Format)); f != "" {
		return strings.TrimPrefix(f, ".")
	}
	return DefaultFormat
}

// FigureSize returns the figure width and height in inches.
func (c Config) FigureSize() (float64, float64) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = defaultWidthInches
	}
	if h <= 0 {
		h = defaultHeightInches
	}
	return w, h
}

// OutputPath returns the chart path for a plot kind: <outputDir>/<kind>.<format>.
func (c Config) OutputPath(kind string) string {
	name := fmt.Sprintf("%s.%s", kind, c.OutputFormat())
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}

// SeparationFraction returns the share of the value range used when MinSeparation is unset.
func (c Config) SeparationFraction() float64 {
	return defaultSeparationFraction
}

// ConditionLabels returns one legend label per input path. Configured labels are used in
// order; the rest fall back to the file name without extension.
func (c Config) ConditionLabels(paths []string) []string {
	labels := make([]string, len(paths))
	for i, path := range paths {
		if i < len(c.Labels) && strings.TrimSpace(c.Labels[i]) != "" {
			labels[i] = c.Labels[i]
			continue
		}
		base := filepath.Base(path)
		labels[i] = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return labels
}
