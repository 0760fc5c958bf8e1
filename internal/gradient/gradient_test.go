package gradient

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestDiagonalEndpoints(t *testing.T) {
	pairs := []struct{ from, to color.NRGBA }{
		{color.NRGBA{255, 107, 53, 255}, color.NRGBA{20, 184, 166, 255}},
		{color.NRGBA{0, 0, 0, 255}, color.NRGBA{255, 255, 255, 255}},
		{color.NRGBA{255, 255, 255, 255}, color.NRGBA{0, 0, 0, 255}},
		{color.NRGBA{12, 200, 7, 255}, color.NRGBA{12, 200, 7, 255}},
	}
	sizes := []image.Point{{1024, 1024}, {512, 256}, {300, 700}}

	for _, p := range pairs {
		for _, s := range sizes {
			t.Run(fmt.Sprintf("%v-%v_%dx%d", p.from, p.to, s.X, s.Y), func(t *testing.T) {
				img := Diagonal(s.X, s.Y, p.from, p.to)
				if img.Bounds() != image.Rect(0, 0, s.X, s.Y) {
					t.Fatalf("bounds = %v", img.Bounds())
				}
				if got := img.NRGBAAt(0, 0); got != p.from {
					t.Errorf("top-left = %+v, want %+v", got, p.from)
				}
				got := img.NRGBAAt(s.X-1, s.Y-1)
				if absDiff(got.R, p.to.R) > 1 || absDiff(got.G, p.to.G) > 1 || absDiff(got.B, p.to.B) > 1 {
					t.Errorf("bottom-right = %+v, want %+v within 1", got, p.to)
				}
				if got.A != 255 {
					t.Errorf("bottom-right alpha = %d", got.A)
				}
			})
		}
	}
}

func TestDiagonalTruncates(t *testing.T) {
	// 2x2 with black -> white: pixel (1,0) has ratio 1/4, 255/4 = 63.75.
	img := Diagonal(2, 2, color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if got := img.NRGBAAt(1, 0); got.R != 63 || got.G != 63 || got.B != 63 {
		t.Errorf("(1,0) = %+v, want 63 per channel", got)
	}
	if got := img.NRGBAAt(1, 1); got.R != 127 {
		t.Errorf("(1,1).R = %d, want 127", got.R)
	}
}

func TestDiagonalConstantAlongAntiDiagonal(t *testing.T) {
	img := Diagonal(64, 64, color.NRGBA{R: 255, A: 255}, color.NRGBA{B: 255, A: 255})
	want := img.NRGBAAt(40, 0)
	for x := 0; x <= 40; x++ {
		if got := img.NRGBAAt(x, 40-x); got != want {
			t.Fatalf("(%d,%d) = %+v, want %+v", x, 40-x, got, want)
		}
	}
}

func TestDiagonalOpaque(t *testing.T) {
	img := Diagonal(16, 9, color.NRGBA{1, 2, 3, 0}, color.NRGBA{4, 5, 6, 0})
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("alpha at byte %d = %d", i, img.Pix[i])
		}
	}
}
