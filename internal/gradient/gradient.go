// Package gradient renders the app icon background.
package gradient

import (
	"image"
	"image/color"
)

// Diagonal returns an opaque width x height image shading from `from` at
// the top-left corner towards `to` at the bottom-right. The blend weight
// of pixel (x, y) is (x+y)/(width+height); each channel is truncated to
// an integer.
func Diagonal(width, height int, from, to color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	span := float64(width + height)
	f := [3]float64{float64(from.R), float64(from.G), float64(from.B)}
	t := [3]float64{float64(to.R), float64(to.G), float64(to.B)}

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			ratio := float64(x+y) / span
			px := row[x*4 : x*4+4 : x*4+4]
			for c := 0; c < 3; c++ {
				px[c] = uint8(f[c]*(1-ratio) + t[c]*ratio)
			}
			px[3] = 0xFF
		}
	}
	return img
}
