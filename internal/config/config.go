// Package config loads heatmap defaults from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/heatmap-go/pkg/heatmap"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

// Config represents the application configuration
type Config struct {
	// Colors as "#rrggbb" or "r,g,b"
	ColorMin string
	ColorMid string
	ColorMax string

	StripPattern string
	RangeSeed    string
	Clamp        bool
	Workers      int
	HeaderRows   int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ColorMin:     getEnv("HEATMAP_COLOR_MIN", "240,128,128"),
		ColorMid:     getEnv("HEATMAP_COLOR_MID", "240,224,127"),
		ColorMax:     getEnv("HEATMAP_COLOR_MAX", "64,192,127"),
		StripPattern: getEnv("HEATMAP_STRIP_PATTERN", heatmap.DefaultStripPattern),
		RangeSeed:    getEnv("HEATMAP_RANGE_SEED", string(heatmap.SeedZero)),
		Clamp:        getEnvAsBool("HEATMAP_CLAMP", true),
		Workers:      getEnvAsInt("HEATMAP_WORKERS", 1),
		HeaderRows:   getEnvAsInt("HEATMAP_HEADER_ROWS", 1),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "console"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration can be turned into heatmap options.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.HeaderRows < 0 {
		return errors.New("header rows cannot be negative")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (must be json or console)", c.LogFormat)
	}
	_, err := c.Options()
	return err
}

// Options converts the configuration into heatmap options.
func (c *Config) Options() (heatmap.Options, error) {
	opts := heatmap.DefaultOptions()

	for _, color := range []struct {
		name string
		raw  string
		dst  *models.RGB
	}{
		{"min", c.ColorMin, &opts.ColorMin},
		{"mid", c.ColorMid, &opts.ColorMid},
		{"max", c.ColorMax, &opts.ColorMax},
	} {
		rgb, err := models.ParseRGB(color.raw)
		if err != nil {
			return opts, fmt.Errorf("color %s: %w", color.name, err)
		}
		*color.dst = rgb
	}

	clamp := c.Clamp
	opts.StripPattern = c.StripPattern
	opts.RangeSeed = heatmap.RangeSeed(c.RangeSeed)
	opts.Clamp = &clamp
	opts.Workers = c.Workers

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// NewLogger builds a zap logger for the configured level and format.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// ParseColumns parses a comma-separated list of 0-based column indexes.
func ParseColumns(s string) ([]int, error) {
	var cols []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		col, err := strconv.Atoi(part)
		if err != nil || col < 0 {
			return nil, fmt.Errorf("invalid column index %q", part)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
