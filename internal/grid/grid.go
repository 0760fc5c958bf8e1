// Package grid cuts single icons out of a square sheet laid out as a
// uniform 3x3 grid.
package grid

import (
	"image"

	"github.com/Mavwarf/assetgen/internal/raster"
)

const (
	SheetSize = 2048
	CellSize  = 680 // SheetSize / 3, rounded down to what the artwork uses
	Rows      = 3
	Columns   = 3
)

// Cell addresses one icon on the sheet.
type Cell struct {
	Row, Col int
}

// Rect returns the crop rectangle of c for the given cell size.
func Rect(c Cell, cellSize int) image.Rectangle {
	x := c.Col * cellSize
	y := c.Row * cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// Extract returns the cellSize x cellSize sub-image at c. Nothing is
// bounds-checked: a cell past the edge of src comes back (partly)
// transparent rather than as an error.
func Extract(src image.Image, c Cell, cellSize int) *image.NRGBA {
	return raster.Crop(src, Rect(c, cellSize).Add(src.Bounds().Min))
}
