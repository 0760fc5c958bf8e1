package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestSaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "design-output")
	src := solid(10, 6, color.NRGBA{R: 200, G: 10, B: 30, A: 255})

	a, err := Save(dir, "thing.png", src)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := Asset{Name: "thing.png", Path: filepath.Join(dir, "thing.png"), Width: 10, Height: 6, Bytes: a.Bytes}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("asset mismatch (-want +got):\n%s", diff)
	}
	fi, err := os.Stat(a.Path)
	if err != nil {
		t.Fatal(err)
	}
	if int(fi.Size()) != a.Bytes {
		t.Errorf("Bytes = %d, file size %d", a.Bytes, fi.Size())
	}

	got, err := Open(a.Path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got.Bounds() != image.Rect(0, 0, 10, 6) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.NRGBAAt(3, 3); c != (color.NRGBA{R: 200, G: 10, B: 30, A: 255}) {
		t.Errorf("pixel = %+v", c)
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false for %v", err)
	}
}

func TestOpenMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.png")
	os.WriteFile(p, []byte("not a png"), 0644)
	if _, err := Open(p); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	img := solid(32, 32, color.NRGBA{R: 1, G: 2, B: 3, A: 128})
	a, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode(img)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two encodes of the same image differ")
	}
}

func TestCropInside(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	src.SetNRGBA(5, 6, color.NRGBA{R: 255, A: 255})

	got := Crop(src, image.Rect(4, 4, 8, 8))
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.NRGBAAt(1, 2); c.R != 255 || c.A != 255 {
		t.Errorf("moved pixel = %+v", c)
	}
}

func TestCropOutsideIsTransparent(t *testing.T) {
	src := solid(8, 8, color.NRGBA{G: 255, A: 255})
	got := Crop(src, image.Rect(6, 6, 10, 10))
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.NRGBAAt(0, 0); c.A != 255 {
		t.Errorf("in-source pixel alpha = %d", c.A)
	}
	if c := got.NRGBAAt(3, 3); c.A != 0 {
		t.Errorf("out-of-source pixel alpha = %d, want 0", c.A)
	}
}

func TestResize(t *testing.T) {
	got := Resize(solid(40, 20, color.NRGBA{B: 255, A: 255}), 10, 10)
	if got.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.NRGBAAt(5, 5); c.B != 255 || c.A != 255 {
		t.Errorf("pixel = %+v", c)
	}
}

func TestPasteRespectsAlpha(t *testing.T) {
	bg := solid(4, 4, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	fg := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	fg.SetNRGBA(0, 0, color.NRGBA{A: 255})

	got := Paste(bg, fg, image.Pt(1, 1))
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{A: 255}) {
		t.Errorf("opaque paste = %+v, want black", c)
	}
	if c := got.NRGBAAt(2, 2); c != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("transparent paste = %+v, want white", c)
	}
	if c := bg.NRGBAAt(1, 1); c.R != 255 {
		t.Error("Paste modified dst")
	}
}

func TestPasteTranslucentOntoEmptyCanvas(t *testing.T) {
	src := solid(2, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	got := Paste(Canvas(4, 4), src, image.Pt(1, 1))
	if c := got.NRGBAAt(1, 1); c != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("translucent pixel = %+v, want source color and alpha unchanged", c)
	}
	if c := got.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("untouched pixel alpha = %d, want 0", c.A)
	}
}

func TestPasteMasked(t *testing.T) {
	dst := Canvas(4, 4)
	src := solid(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	m := image.NewAlpha(image.Rect(0, 0, 4, 4))
	m.SetAlpha(2, 2, color.Alpha{A: 255})

	PasteMasked(dst, src, image.Point{}, m)
	if c := dst.NRGBAAt(2, 2); c != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("masked-in pixel = %+v", c)
	}
	if c := dst.NRGBAAt(0, 0); c.A != 0 {
		t.Errorf("masked-out pixel alpha = %d, want 0", c.A)
	}
}
