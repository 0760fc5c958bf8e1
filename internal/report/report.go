// Package report prints pipeline progress to the console.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/Mavwarf/assetgen/internal/raster"
)

// MaxWidth caps the banner rule.
const MaxWidth = 50

// Reporter writes progress to out and failures to errOut.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	width  int
}

// New returns a Reporter. When out is a terminal narrower than MaxWidth
// the banner shrinks to fit.
func New(out, errOut io.Writer) *Reporter {
	return &Reporter{out: out, errOut: errOut, width: ruleWidth(out)}
}

func ruleWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return MaxWidth
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 || cols > MaxWidth {
		return MaxWidth
	}
	return cols
}

// Rule prints a separator line.
func (r *Reporter) Rule() {
	fmt.Fprintln(r.out, strings.Repeat("=", r.width))
}

// Banner prints title between two rules.
func (r *Reporter) Banner(title string) {
	r.Rule()
	fmt.Fprintln(r.out, title)
	r.Rule()
}

// Done closes a successful run.
func (r *Reporter) Done(msg, dir string) {
	r.Rule()
	fmt.Fprintf(r.out, "[OK] %s\n", msg)
	fmt.Fprintf(r.out, "output dir: %s\n", dir)
	r.Rule()
}

// Step announces the next pipeline step.
func (r *Reporter) Step(name string) {
	fmt.Fprintf(r.out, "generating %s...\n", name)
}

// Wrote confirms a written asset.
func (r *Reporter) Wrote(a raster.Asset) {
	fmt.Fprintf(r.out, "[OK] wrote: %s (%dx%d)\n", a.Path, a.Width, a.Height)
}

// Error prints err once and, when it carries one, the frames of its
// deepest stack trace.
func (r *Reporter) Error(err error) {
	fmt.Fprintf(r.errOut, "[ERROR] %v\n", err)
	if st := stackOf(err); st != nil {
		fmt.Fprintf(r.errOut, "%+v\n", st)
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackOf walks err's chain and returns the innermost stack trace,
// which points closest to where the failure happened.
func stackOf(err error) errors.StackTrace {
	var st errors.StackTrace
	for ; err != nil; err = errors.Unwrap(err) {
		if t, ok := err.(stackTracer); ok {
			st = t.StackTrace()
		}
	}
	return st
}

// Warn prints a non-fatal problem from an optional subsystem.
func (r *Reporter) Warn(subsystem string, err error) {
	fmt.Fprintf(r.errOut, "%s: %v\n", subsystem, err)
}

// Listing prints every PNG in dir, sorted by name, with its size.
func (r *Reporter) Listing(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "generated files:")
	for _, n := range names {
		fi, err := os.Stat(filepath.Join(dir, n))
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "  - %s (%s)\n", n, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}
