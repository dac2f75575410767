package config

import (
	"testing"

	"github.com/ukaji3/heatmap-go/pkg/heatmap"
	"github.com/ukaji3/heatmap-go/pkg/heatmap/models"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"HEATMAP_COLOR_MIN", "HEATMAP_COLOR_MID", "HEATMAP_COLOR_MAX",
		"HEATMAP_STRIP_PATTERN", "HEATMAP_RANGE_SEED", "HEATMAP_CLAMP",
		"HEATMAP_WORKERS", "HEATMAP_HEADER_ROWS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.ColorMin != heatmap.DefaultColorMin || opts.ColorMid != heatmap.DefaultColorMid || opts.ColorMax != heatmap.DefaultColorMax {
		t.Errorf("Unexpected default colors: %v %v %v", opts.ColorMin, opts.ColorMid, opts.ColorMax)
	}
	if opts.StripPattern != heatmap.DefaultStripPattern {
		t.Errorf("Unexpected strip pattern %q", opts.StripPattern)
	}
	if !opts.ShouldClamp() || opts.Workers != 1 || opts.RangeSeed != heatmap.SeedZero {
		t.Errorf("Unexpected defaults: %+v", opts)
	}
	if cfg.HeaderRows != 1 {
		t.Errorf("Expected 1 header row, got %d", cfg.HeaderRows)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HEATMAP_COLOR_MIN", "#000000")
	t.Setenv("HEATMAP_RANGE_SEED", "first")
	t.Setenv("HEATMAP_CLAMP", "false")
	t.Setenv("HEATMAP_WORKERS", "4")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.ColorMin != (models.RGB{}) {
		t.Errorf("Expected black, got %v", opts.ColorMin)
	}
	if opts.RangeSeed != heatmap.SeedFirst || opts.ShouldClamp() || opts.Workers != 4 {
		t.Errorf("Unexpected options: %+v", opts)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Sync()
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad color", func(c *Config) { c.ColorMid = "purple" }},
		{"bad seed", func(c *Config) { c.RangeSeed = "max" }},
		{"bad pattern", func(c *Config) { c.StripPattern = "[" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative header rows", func(c *Config) { c.HeaderRows = -1 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ColorMin:     "240,128,128",
				ColorMid:     "240,224,127",
				ColorMax:     "64,192,127",
				StripPattern: heatmap.DefaultStripPattern,
				RangeSeed:    "zero",
				Clamp:        true,
				Workers:      1,
				HeaderRows:   1,
				LogLevel:     "info",
				LogFormat:    "console",
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("baseline config invalid: %v", err)
			}
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	cols, err := ParseColumns(" 0, 9,,3")
	if err != nil {
		t.Fatalf("ParseColumns failed: %v", err)
	}
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 9 || cols[2] != 3 {
		t.Errorf("Unexpected columns: %v", cols)
	}

	if cols, err := ParseColumns(""); err != nil || cols != nil {
		t.Errorf("Expected empty list, got %v %v", cols, err)
	}
	for _, bad := range []string{"a", "-1", "1,x"} {
		if _, err := ParseColumns(bad); err == nil {
			t.Errorf("ParseColumns(%q) expected error", bad)
		}
	}
}
