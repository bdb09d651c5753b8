package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/stitchkit/panel"
	"github.com/stitchkit/panel/stitchgrid"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the outline and stitch counts of a panel",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().String("lang", "en", "Language used to format numbers (BCP 47 tag)")
	cmd.Flags().Bool("grid", false, "Also print the stitch grid as text")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", lang, err)
	}
	showGrid, err := cmd.Flags().GetBool("grid")
	if err != nil {
		return fmt.Errorf("failed to get grid flag: %w", err)
	}

	doc, err := loadDocument(cmd, args[0])
	if err != nil {
		return err
	}

	res := panel.Detect(doc.Shape, doc.Scale)
	mask, err := stitchgrid.Sample(res, doc.Border.Thickness, doc.Gauge)
	if err != nil {
		return err
	}

	p := message.NewPrinter(tag)
	writeReport(cmd.OutOrStdout(), p, doc.Border.Thickness, res, mask)
	if showGrid {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), mask.String())
	}
	return nil
}

// writeReport prints one "label: value" line per measurement.
func writeReport(w io.Writer, p *message.Printer, thickness float64, res *panel.Result, mask *stitchgrid.Mask) {
	b := mask.Bounds()
	g := mask.Gauge()
	cols, rows := mask.Size()

	p.Fprintf(w, "%-17s %d\n", "segments:", len(res.Coordinates))
	p.Fprintf(w, "%-17s %d\n", "edges:", len(res.Edges))
	p.Fprintf(w, "%-17s %d\n", "exterior edges:", len(res.ExteriorEdges))
	p.Fprintf(w, "%-17s %.2f x %.2f\n", "size:", b.Width(), b.Height())
	p.Fprintf(w, "%-17s %.2f sts / %.2f rows per 4in\n", "gauge:",
		g.StitchesPerFourInches, g.RowsPerFourInches)
	p.Fprintf(w, "%-17s %.2f sts = %.3f\n", "border:",
		thickness, panel.BorderThickness(thickness, &g))
	p.Fprintf(w, "%-17s %d x %d\n", "stitch grid:", cols, rows)
	p.Fprintf(w, "%-17s %d\n", "border stitches:", mask.Count(stitchgrid.Border))
	p.Fprintf(w, "%-17s %d\n", "interior:", mask.Count(stitchgrid.Interior))
}
