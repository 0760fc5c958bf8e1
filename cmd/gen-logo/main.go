// gen-logo cuts the wordmark off the logo sheet in the working directory
// and writes the text-free app logo plus the full branding image to
// design-output/.
// Usage: go run ./cmd/gen-logo
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/driver"
	"github.com/Mavwarf/assetgen/internal/logo"
	"github.com/Mavwarf/assetgen/internal/report"
)

func main() {
	rep := report.New(os.Stdout, os.Stderr)

	cfg, err := config.Load("")
	if err != nil {
		rep.Error(err)
		return
	}

	res := driver.Run(driver.Pipeline{
		Name:  "logo",
		Title: "generating logo...",
		Done:  "logo generated",
		Steps: logo.Steps(cfg),
	}, cfg, rep)
	if res.Err != nil {
		return
	}

	size := cfg.Logo.Size
	fmt.Println()
	fmt.Println("generated files:")
	fmt.Printf("  - %s (%dx%dpx) - app icon, no text\n", logo.MainFile, size, size)
	fmt.Printf("  - %s (%dx%dpx) - branding image, with text\n", logo.BrandingFile, size, size)
}
