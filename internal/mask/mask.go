// Package mask builds the single-channel stencils used to clip pastes.
package mask

import (
	"image"

	"github.com/fogleman/gg"
)

// RoundedRect returns a width x height mask that is opaque inside a
// rounded rectangle spanning the whole image and transparent outside it.
// The boundary is anti-aliased. For radius >= 4 the four corner pixels
// are fully transparent.
func RoundedRect(width, height int, radius float64) *image.Alpha {
	dc := gg.NewContext(width, height)
	dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), radius)
	dc.SetRGB(1, 1, 1)
	dc.Fill()
	return dc.AsMask()
}
