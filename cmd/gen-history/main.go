// gen-history lists and prunes the run history that gen-icons and
// gen-logo record when "history": true is set in assetgen-config.json.
// Usage: go run ./cmd/gen-history [count | show <run-id> | clean <days> | clear]
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/Mavwarf/assetgen/internal/history"
	"github.com/Mavwarf/assetgen/internal/paths"
)

const defaultCount = 10

const usage = `usage: gen-history [count]          list recent runs (default 10)
       gen-history show <run-id>    list the assets a run wrote
       gen-history clean <days>     remove runs older than days
       gen-history clear            remove all runs`

func main() {
	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No history found. Enable it with \"history\": true in " + paths.ConfigFileName + ".")
		return
	}

	s, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	err = run(s, os.Args[1:], os.Stdout)
	s.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(s history.Store, args []string, w io.Writer) error {
	if len(args) > 0 {
		switch args[0] {
		case "show":
			if len(args) != 2 {
				return fmt.Errorf("show needs a run id\n%s", usage)
			}
			return show(s, args[1], w)
		case "clean":
			if len(args) != 2 {
				return fmt.Errorf("clean needs a number of days\n%s", usage)
			}
			days, err := positive(args[1], "days")
			if err != nil {
				return err
			}
			n, err := s.Clean(days)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Removed %d runs older than %d days.\n", n, days)
			return nil
		case "clear":
			if err := s.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(w, "History cleared: %s\n", s.Path())
			return nil
		case "help", "-h", "--help":
			fmt.Fprintln(w, usage)
			return nil
		}
	}

	count := defaultCount
	if len(args) > 0 {
		n, err := positive(args[0], "count")
		if err != nil {
			return err
		}
		count = n
	}
	return list(s, count, w)
}

func list(s history.Store, count int, w io.Writer) error {
	runs, err := s.Runs(count)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s  %-5s  %-6s  %2d assets  %s\n",
			r.Started.Local().Format("2006-01-02 15:04:05"), r.Pipeline, r.Status, r.Assets, r.ID)
		if r.Error != "" {
			fmt.Fprintf(w, "    %s\n", r.Error)
		}
	}
	return nil
}

func show(s history.Store, id string, w io.Writer) error {
	assets, err := s.Assets(id)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintf(w, "No assets recorded for run %s.\n", id)
		return nil
	}
	var total uint64
	for _, a := range assets {
		fmt.Fprintf(w, "  - %s (%dx%d, %s)\n", a.Path, a.Width, a.Height, humanize.Bytes(uint64(a.Bytes)))
		total += uint64(a.Bytes)
	}
	fmt.Fprintf(w, "%d files, %s\n", len(assets), humanize.Bytes(total))
	return nil
}

func positive(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, arg)
	}
	return n, nil
}
