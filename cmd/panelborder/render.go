package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stitchkit/panel"
	"github.com/stitchkit/panel/stitchgrid"
	"github.com/stitchkit/panel/svgout"
)

func newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask FILE",
		Short: "Write the stitch grid as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cellSize, err := cmd.Flags().GetInt("cell-size")
			if err != nil {
				return fmt.Errorf("failed to get cell-size flag: %w", err)
			}
			workers, err := cmd.Flags().GetInt("workers")
			if err != nil {
				return fmt.Errorf("failed to get workers flag: %w", err)
			}

			return runRender(cmd, args[0], func(w io.Writer, path string) error {
				doc, err := loadDocument(cmd, path)
				if err != nil {
					return err
				}
				res := panel.Detect(doc.Shape, doc.Scale)
				mask, err := stitchgrid.Sample(res, doc.Border.Thickness, doc.Gauge, stitchgrid.WithWorkers(workers))
				if err != nil {
					return err
				}
				return mask.WritePNG(w, cellSize)
			})
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Int("cell-size", 8, "Pixels per stitch in the preview")
	cmd.Flags().Int("workers", 0, "Sampling workers (0 = GOMAXPROCS)")
	return cmd
}

func newSVGCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg FILE",
		Short: "Write the panel outline and seams as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			margin, err := cmd.Flags().GetFloat64("margin")
			if err != nil {
				return fmt.Errorf("failed to get margin flag: %w", err)
			}
			noSeams, err := cmd.Flags().GetBool("no-seams")
			if err != nil {
				return fmt.Errorf("failed to get no-seams flag: %w", err)
			}

			opts := []svgout.Option{svgout.WithMargin(margin)}
			if noSeams {
				opts = append(opts, svgout.WithoutSeams())
			}

			return runRender(cmd, args[0], func(w io.Writer, path string) error {
				doc, err := loadDocument(cmd, path)
				if err != nil {
					return err
				}
				return svgout.Write(w, panel.Detect(doc.Shape, doc.Scale), opts...)
			})
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Float64("margin", 0.5, "Space around the outline, in shape units")
	cmd.Flags().Bool("no-seams", false, "Draw only the exterior outline")
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	cmd.Flags().Bool("watch", false, "Render again whenever FILE changes")
}

// renderFunc renders the document at path to w.
type renderFunc func(w io.Writer, path string) error

// runRender renders once and, with --watch, again on every change to path
// until interrupted.
func runRender(cmd *cobra.Command, path string, render renderFunc) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("failed to get watch flag: %w", err)
	}

	once := func() error {
		return renderTo(cmd.OutOrStdout(), output, path, render)
	}

	if err := once(); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndRun(cmd.Context(), path, once)
}

// renderTo writes to output, or to stdout when output is empty. The output
// file is replaced only after a successful render.
func renderTo(stdout io.Writer, output, path string, render renderFunc) error {
	if output == "" {
		return render(stdout, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(output), ".panelborder-*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := render(tmp, path); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	panel.Logger().Info("output written", "path", output)
	return nil
}
