package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/Mavwarf/assetgen/internal/raster"
)

func newBuffered() (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(&out, &errOut), &out, &errOut
}

func TestBanner(t *testing.T) {
	r, out, _ := newBuffered()
	r.Banner("generating icons...")

	rule := strings.Repeat("=", MaxWidth)
	want := rule + "\ngenerating icons...\n" + rule + "\n"
	if out.String() != want {
		t.Errorf("Banner output = %q, want %q", out.String(), want)
	}
}

func TestDone(t *testing.T) {
	r, out, _ := newBuffered()
	r.Done("all icons generated", "design-output")
	rule := strings.Repeat("=", MaxWidth)
	want := rule + "\n[OK] all icons generated\noutput dir: design-output\n" + rule + "\n"
	if out.String() != want {
		t.Errorf("Done output = %q, want %q", out.String(), want)
	}
}

func TestStep(t *testing.T) {
	r, out, _ := newBuffered()
	r.Step("favicon")
	if out.String() != "generating favicon...\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestWrote(t *testing.T) {
	r, out, _ := newBuffered()
	r.Wrote(raster.Asset{Name: "favicon.png", Path: "design-output/favicon.png", Width: 512, Height: 512})
	want := "[OK] wrote: design-output/favicon.png (512x512)\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestErrorPrintsStack(t *testing.T) {
	r, out, errOut := newBuffered()
	r.Error(errors.New("decode failed"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	s := errOut.String()
	if !strings.HasPrefix(s, "[ERROR] decode failed\n") {
		t.Errorf("stderr = %q", s)
	}
	if !strings.Contains(s, "report.TestErrorPrintsStack") {
		t.Errorf("stderr has no stack trace:\n%s", s)
	}
}

func TestErrorPrintsWrappedMessageOnce(t *testing.T) {
	r, _, errOut := newBuffered()
	err := errors.WithMessagef(errors.WithStack(fmt.Errorf("decode: bad data")), "step %d (%s)", 2, "favicon")
	r.Error(err)

	s := errOut.String()
	if !strings.HasPrefix(s, "[ERROR] step 2 (favicon): decode: bad data\n") {
		t.Errorf("stderr = %q", s)
	}
	if n := strings.Count(s, "decode: bad data"); n != 1 {
		t.Errorf("message printed %d times:\n%s", n, s)
	}
	if n := strings.Count(s, "step 2 (favicon)"); n != 1 {
		t.Errorf("context printed %d times:\n%s", n, s)
	}
	if !strings.Contains(s, "report.TestErrorPrintsWrappedMessageOnce") {
		t.Errorf("stderr has no stack trace:\n%s", s)
	}
}

func TestErrorWithoutStack(t *testing.T) {
	r, _, errOut := newBuffered()
	r.Error(fmt.Errorf("config: bad value"))

	if got, want := errOut.String(), "[ERROR] config: bad value\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestWarn(t *testing.T) {
	r, _, errOut := newBuffered()
	r.Warn("mqtt", fmt.Errorf("connect timeout"))
	if got := errOut.String(); got != "mqtt: connect timeout\n" {
		t.Errorf("got %q", got)
	}
}

func TestListing(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.png"), make([]byte, 2048), 0644)
	os.WriteFile(filepath.Join(dir, "a.png"), make([]byte, 10), 0644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)
	os.Mkdir(filepath.Join(dir, "sub.png"), 0755)

	r, out, _ := newBuffered()
	if err := r.Listing(dir); err != nil {
		t.Fatal(err)
	}
	want := "\ngenerated files:\n  - a.png (10 B)\n  - b.png (2.0 kB)\n"
	if out.String() != want {
		t.Errorf("Listing = %q, want %q", out.String(), want)
	}
}

func TestListingMissingDir(t *testing.T) {
	r, _, _ := newBuffered()
	if err := r.Listing(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing dir")
	}
}
