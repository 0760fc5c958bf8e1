// gen-icons builds the app icon set from the logo and the 3x3 icon sheet
// in the working directory and writes it to design-output/.
// Usage: go run ./cmd/gen-icons
package main

import (
	"os"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/driver"
	"github.com/Mavwarf/assetgen/internal/iconset"
	"github.com/Mavwarf/assetgen/internal/report"
)

func main() {
	rep := report.New(os.Stdout, os.Stderr)

	cfg, err := config.Load("")
	if err != nil {
		rep.Error(err)
		return
	}

	driver.Run(driver.Pipeline{
		Name:  "icons",
		Title: "generating icons...",
		Done:  "all icons generated",
		Steps: iconset.Steps(cfg),
		List:  true,
	}, cfg, rep)
}
