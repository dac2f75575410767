// Package main provides the CLI entry point for heatmap-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/heatmap-go/internal/config"
	"github.com/ukaji3/heatmap-go/pkg/heatmap"
)

var (
	cfg *config.Config

	excludeCols string
	noClamp     bool
	jsonPath    string
	pretty      bool
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Color table rows with a three-point heatmap",
		Long: `heatmap colors the numeric cells of every table row with a gradient
from the min color, through the mid color, to the max color of that row.`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&excludeCols, "exclude", "", "Comma-separated 0-based column indexes to leave uncolored")
	pf.StringVar(&cfg.ColorMin, "color-min", cfg.ColorMin, "Color of the lowest value (#rrggbb or r,g,b)")
	pf.StringVar(&cfg.ColorMid, "color-mid", cfg.ColorMid, "Color of the midpoint (#rrggbb or r,g,b)")
	pf.StringVar(&cfg.ColorMax, "color-max", cfg.ColorMax, "Color of the highest value (#rrggbb or r,g,b)")
	pf.StringVar(&cfg.StripPattern, "strip", cfg.StripPattern, "Pattern of characters removed before parsing values")
	pf.StringVar(&cfg.RangeSeed, "range-seed", cfg.RangeSeed, "Row range seed: zero or first")
	pf.BoolVar(&noClamp, "no-clamp", !cfg.Clamp, "Do not clamp color channels to 0-255")
	pf.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of rows colored concurrently")
	pf.StringVar(&jsonPath, "json", "", "Write the applied colors as JSON to this file")
	pf.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newXLSXCmd(), newHTMLCmd(), newCSVCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup resolves the flags into heatmap options and a logger.
func setup() (heatmap.Options, *zap.Logger, error) {
	cfg.Clamp = !noClamp
	if err := cfg.Validate(); err != nil {
		return heatmap.Options{}, nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return opts, nil, err
	}
	if opts.ExcludeColumns, err = config.ParseColumns(excludeCols); err != nil {
		return opts, nil, err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return opts, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	opts.Logger = logger
	return opts, logger, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
