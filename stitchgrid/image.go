package stitchgrid

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// DefaultPalette colours Outside, Interior and Border cells, in that order.
var DefaultPalette = color.Palette{
	color.RGBA{0xff, 0xff, 0xff, 0x00},
	color.RGBA{0xe8, 0xe4, 0xda, 0xff},
	color.RGBA{0xb0, 0x30, 0x30, 0xff},
}

// Image returns the mask with one pixel per stitch, indexed into
// DefaultPalette.
func (m *Mask) Image() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, m.cols, m.rows), DefaultPalette)
	for row := range m.rows {
		for col := range m.cols {
			img.SetColorIndex(col, row, uint8(m.At(col, row)))
		}
	}
	return img
}

// Preview returns the mask enlarged so that each stitch is a cellSize square.
// Stitches are taller than they are wide in real fabric, but the preview
// keeps cells square so individual stitches stay easy to count.
func (m *Mask) Preview(cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}
	src := m.Image()
	dst := image.NewRGBA(image.Rect(0, 0, m.cols*cellSize, m.rows*cellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes Preview(cellSize) as PNG.
func (m *Mask) WritePNG(w io.Writer, cellSize int) error {
	if m.cols == 0 || m.rows == 0 {
		return fmt.Errorf("stitchgrid: empty mask (%dx%d)", m.cols, m.rows)
	}
	if err := png.Encode(w, m.Preview(cellSize)); err != nil {
		return fmt.Errorf("stitchgrid: encode png: %w", err)
	}
	return nil
}
