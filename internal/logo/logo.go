// Package logo derives the two logo variants from the full logo sheet:
// a text-free app logo and the branding image with the wordmark.
package logo

import (
	"image"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/raster"
	"github.com/Mavwarf/assetgen/internal/runner"
)

const (
	MainFile     = "logo-main.png"
	BrandingFile = "logo-branding.png"
)

// Textless keeps the horizontal band of sheet that holds the artwork,
// centers it vertically on a transparent square as wide as the sheet and
// scales the result to the logo size.
func Textless(sheet image.Image, cfg config.Config) *image.NRGBA {
	b := sheet.Bounds()
	v := cfg.Variant
	top := b.Min.Y + v.BandTop
	band := raster.Crop(sheet, image.Rect(b.Min.X, top, b.Max.X, top+v.BandHeight))

	side := b.Dx()
	canvas := raster.Paste(raster.Canvas(side, side), band, image.Pt(0, (side-v.BandHeight)/2))
	return raster.Resize(canvas, cfg.Logo.Size, cfg.Logo.Size)
}

// Branding scales the whole sheet, wordmark included.
func Branding(sheet image.Image, cfg config.Config) *image.NRGBA {
	return raster.Resize(sheet, cfg.Logo.Size, cfg.Logo.Size)
}

// Steps returns the pipeline. Both variants come from one decode of the
// sheet.
func Steps(cfg config.Config) []runner.Step {
	return []runner.Step{
		{Name: "logo variants", Run: func(emit runner.Sink) error {
			sheet, err := raster.Open(cfg.Sources.LogoSheet)
			if err != nil {
				return err
			}
			if err := emit.Save(cfg.OutputDir, MainFile, Textless(sheet, cfg)); err != nil {
				return err
			}
			return emit.Save(cfg.OutputDir, BrandingFile, Branding(sheet, cfg))
		}},
	}
}
