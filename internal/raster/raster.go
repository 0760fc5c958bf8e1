// Package raster holds the image primitives shared by both pipelines:
// decode, encode, crop, resize and alpha-aware paste.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/Mavwarf/assetgen/internal/paths"
)

// Asset describes one PNG written to disk.
type Asset struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Bytes  int    `json:"bytes"`
}

// Open decodes the image at path and converts it to NRGBA with its
// origin at (0, 0). A missing file still satisfies errors.Is(err, fs.ErrNotExist).
func Open(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return imaging.Clone(img), nil
}

// Encode renders img as PNG. Output is deterministic for identical pixels.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, errors.Wrap(err, "png encode")
	}
	return buf.Bytes(), nil
}

// Save writes img as dir/name, creating dir if needed. An existing file
// is replaced atomically.
func Save(dir, name string, img image.Image) (Asset, error) {
	data, err := Encode(img)
	if err != nil {
		return Asset{}, errors.WithMessage(err, name)
	}
	p := filepath.Join(dir, name)
	if err := paths.AtomicWrite(p, data); err != nil {
		return Asset{}, errors.Wrapf(err, "write %s", p)
	}
	b := img.Bounds()
	return Asset{Name: name, Path: p, Width: b.Dx(), Height: b.Dy(), Bytes: len(data)}, nil
}

// Resize scales img to exactly width x height with a Lanczos filter.
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Crop copies r out of img. The result always measures r.Dx() x r.Dy();
// parts of r outside img stay fully transparent.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}

// Canvas returns a fully transparent width x height image.
func Canvas(width, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Paste composites src over dst with its top-left corner at at, using
// src's own alpha as the blend weight. dst is not modified.
func Paste(dst, src image.Image, at image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, at, 1.0)
}

// PasteMasked composites src over dst in place at at, weighting every
// pixel by mask. mask is aligned with src.
func PasteMasked(dst draw.Image, src image.Image, at image.Point, mask image.Image) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.DrawMask(dst, r, src, sb.Min, mask, mask.Bounds().Min, draw.Over)
}
