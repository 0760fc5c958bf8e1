// Package iconset builds the app icon set: the gradient app icon, the
// favicon, the tab-bar icons and the map markers.
package iconset

import (
	"image"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/gradient"
	"github.com/Mavwarf/assetgen/internal/grid"
	"github.com/Mavwarf/assetgen/internal/marker"
	"github.com/Mavwarf/assetgen/internal/mask"
	"github.com/Mavwarf/assetgen/internal/raster"
	"github.com/Mavwarf/assetgen/internal/runner"
)

// Output file names.
const (
	AppIconFile = "logo-main.png"
	FaviconFile = "favicon.png"
)

// Entry maps a grid cell to the file it is written to.
type Entry struct {
	Cell grid.Cell
	File string
}

// FaviconCell is the sheet cell holding the favicon artwork.
var FaviconCell = grid.Cell{Row: 0, Col: 0}

// TabBarIcons lists the tab-bar icons in sheet order.
var TabBarIcons = []Entry{
	{grid.Cell{Row: 0, Col: 1}, "tabbar-home.png"},
	{grid.Cell{Row: 0, Col: 2}, "tabbar-home-active.png"},
	{grid.Cell{Row: 1, Col: 0}, "tabbar-list.png"},
	{grid.Cell{Row: 1, Col: 1}, "tabbar-list-active.png"},
	{grid.Cell{Row: 1, Col: 2}, "tabbar-user.png"},
	{grid.Cell{Row: 2, Col: 0}, "tabbar-user-active.png"},
}

// Markers lists the map marker icons.
var Markers = []Entry{
	{grid.Cell{Row: 2, Col: 1}, "marker-user.png"},
	{grid.Cell{Row: 2, Col: 2}, "marker-restaurant.png"},
}

// Badge returns the rounded-square gradient background of the app icon,
// transparent outside the rounded corners.
func Badge(cfg config.Config) *image.NRGBA {
	size := cfg.Logo.Size
	bg := gradient.Diagonal(size, size, cfg.Palette.GradientFrom.NRGBA(), cfg.Palette.GradientTo.NRGBA())
	out := raster.Canvas(size, size)
	raster.PasteMasked(out, bg, image.Point{}, mask.RoundedRect(size, size, cfg.Logo.CornerRadius))
	return out
}

// AppIcon crops the artwork out of the middle of logo (lifted to clear
// the wordmark below it), scales it and centers it on the badge.
func AppIcon(logo image.Image, cfg config.Config) *image.NRGBA {
	lc := cfg.Logo
	b := logo.Bounds()
	left := b.Min.X + (b.Dx()-lc.CenterCrop)/2
	top := b.Min.Y + (b.Dy()-lc.CenterCrop)/2 - lc.Lift
	art := raster.Crop(logo, image.Rect(left, top, left+lc.CenterCrop, top+lc.CenterCrop))
	art = raster.Resize(art, lc.ArtworkSize, lc.ArtworkSize)

	off := (lc.Size - lc.ArtworkSize) / 2
	return raster.Paste(Badge(cfg), art, image.Pt(off, off))
}

// Favicon scales the favicon cell of sheet.
func Favicon(sheet image.Image, cfg config.Config) *image.NRGBA {
	return scaledCell(sheet, FaviconCell, cfg.Grid.CellSize, cfg.FaviconSize)
}

// TabBarIcon scales one tab-bar cell of sheet.
func TabBarIcon(sheet image.Image, c grid.Cell, cfg config.Config) *image.NRGBA {
	return scaledCell(sheet, c, cfg.Grid.CellSize, cfg.TabBarSize)
}

// Marker composes one map marker from a cell of sheet.
func Marker(sheet image.Image, c grid.Cell, cfg config.Config) *image.NRGBA {
	return marker.Compose(grid.Extract(sheet, c, cfg.Grid.CellSize), MarkerStyle(cfg))
}

// MarkerStyle derives the marker geometry from cfg.
func MarkerStyle(cfg config.Config) marker.Style {
	st := marker.DefaultStyle
	st.Size = cfg.Marker.Size
	st.IconSize = cfg.Marker.IconSize
	st.ShadowAlpha = cfg.Marker.ShadowAlpha
	st.ShadowBlur = cfg.Marker.ShadowBlur
	return st
}

func scaledCell(sheet image.Image, c grid.Cell, cellSize, size int) *image.NRGBA {
	return raster.Resize(grid.Extract(sheet, c, cellSize), size, size)
}

// Steps returns the pipeline in run order. Every step opens its own
// source, so a missing icon sheet still leaves the app icon written.
func Steps(cfg config.Config) []runner.Step {
	dir := cfg.OutputDir
	return []runner.Step{
		{Name: "app icon", Run: func(emit runner.Sink) error {
			logo, err := raster.Open(cfg.Sources.Logo)
			if err != nil {
				return err
			}
			return emit.Save(dir, AppIconFile, AppIcon(logo, cfg))
		}},
		{Name: "favicon", Run: func(emit runner.Sink) error {
			sheet, err := raster.Open(cfg.Sources.Icons)
			if err != nil {
				return err
			}
			return emit.Save(dir, FaviconFile, Favicon(sheet, cfg))
		}},
		{Name: "tab-bar icons", Run: func(emit runner.Sink) error {
			sheet, err := raster.Open(cfg.Sources.Icons)
			if err != nil {
				return err
			}
			for _, e := range TabBarIcons {
				if err := emit.Save(dir, e.File, TabBarIcon(sheet, e.Cell, cfg)); err != nil {
					return err
				}
			}
			return nil
		}},
		{Name: "map markers", Run: func(emit runner.Sink) error {
			sheet, err := raster.Open(cfg.Sources.Icons)
			if err != nil {
				return err
			}
			for _, e := range Markers {
				if err := emit.Save(dir, e.File, Marker(sheet, e.Cell, cfg)); err != nil {
					return err
				}
			}
			return nil
		}},
	}
}
