// Package main is the entry point for the panelborder binary.
// It loads a panel document and reports, renders or masks its border.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stitchkit/panel"
	"github.com/stitchkit/panel/shapefile"
)

const defaultLogLevel = "warn"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for panelborder
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "panelborder",
		Short: "Find the border stitches of a knitted panel",
		Long: `Lay out a panel made of stacked trapezoid segments, find its outline and
classify every stitch as border, interior or outside.

Example:
  panelborder inspect sleeve.yaml --thickness 3
  panelborder mask sleeve.yaml -o sleeve.png --watch`,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")
	flags.Float64("scale", 1, "Scale applied to every segment dimension")
	flags.Float64("thickness", shapefile.DefaultBorderThickness, "Border thickness in stitches")
	flags.Float64("stitches", panel.DefaultGauge.StitchesPerFourInches, "Gauge: stitches per four inches")
	flags.Float64("rows", panel.DefaultGauge.RowsPerFourInches, "Gauge: rows per four inches")

	rootCmd.AddCommand(newInspectCmd(), newMaskCmd(), newSVGCmd())
	return rootCmd
}

// setupLogging installs a text logger on stderr at the requested level.
func setupLogging(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}

	panel.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// loadDocument loads the panel document at path. Flags set on the command
// line override the values found in the file.
func loadDocument(cmd *cobra.Command, path string) (*shapefile.Document, error) {
	doc, err := shapefile.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *float64) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetFloat64(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		if v <= 0 {
			return fmt.Errorf("--%s must be positive, got %g", name, v)
		}
		*dst = v
		return nil
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"scale", &doc.Scale},
		{"thickness", &doc.Border.Thickness},
		{"stitches", &doc.Gauge.StitchesPerFourInches},
		{"rows", &doc.Gauge.RowsPerFourInches},
	} {
		if err := override(f.name, f.dst); err != nil {
			return nil, err
		}
	}

	return doc, nil
}
