// Package marker composes circular map markers: a soft drop shadow, a
// white disc and an icon centered on top.
package marker

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/Mavwarf/assetgen/internal/raster"
)

// Style holds the marker geometry. Insets are measured from the canvas
// edge to the shape's bounding box.
type Style struct {
	Size        int
	IconSize    int
	ShadowInset float64
	ShadowAlpha uint8
	ShadowBlur  float64 // Gaussian sigma
	DiscInset   float64
}

// DefaultStyle is the 96 px marker used by the map view.
var DefaultStyle = Style{
	Size:        96,
	IconSize:    64,
	ShadowInset: 4,
	ShadowAlpha: 60,
	ShadowBlur:  3,
	DiscInset:   2,
}

// Compose renders icon onto a st.Size square marker. The icon is resized
// to st.IconSize and centered. Output depends only on icon and st.
func Compose(icon image.Image, st Style) *image.NRGBA {
	canvas := raster.Canvas(st.Size, st.Size)

	shadow := ellipse(st.Size, st.ShadowInset, color.NRGBA{A: st.ShadowAlpha})
	if st.ShadowBlur > 0 {
		shadow = imaging.Blur(shadow, st.ShadowBlur)
	}
	canvas = raster.Paste(canvas, shadow, image.Point{})

	disc := ellipse(st.Size, st.DiscInset, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	canvas = raster.Paste(canvas, disc, image.Point{})

	off := (st.Size - st.IconSize) / 2
	scaled := raster.Resize(icon, st.IconSize, st.IconSize)
	return raster.Paste(canvas, scaled, image.Pt(off, off))
}

// ellipse draws a filled circle inset from every edge of a size x size
// transparent layer.
func ellipse(size int, inset float64, c color.NRGBA) *image.NRGBA {
	dc := gg.NewContext(size, size)
	half := float64(size) / 2
	dc.DrawEllipse(half, half, half-inset, half-inset)
	dc.SetColor(c)
	dc.Fill()
	return imaging.Clone(dc.Image())
}
