// mkicon renders the bare gradient badge of the app icon (no artwork),
// for use as a placeholder before the logo exists.
// Usage: go run ./cmd/mkicon <output.png>
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/iconset"
	"github.com/Mavwarf/assetgen/internal/paths"
	"github.com/Mavwarf/assetgen/internal/raster"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mkicon <output.png>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(out string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	data, err := raster.Encode(iconset.Badge(cfg))
	if err != nil {
		return err
	}
	return paths.AtomicWrite(out, data)
}
