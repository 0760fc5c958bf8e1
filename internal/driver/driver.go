// Package driver runs one pipeline end to end: output directory, steps,
// console report, run history and completion message.
package driver

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/Mavwarf/assetgen/internal/config"
	"github.com/Mavwarf/assetgen/internal/history"
	"github.com/Mavwarf/assetgen/internal/mqtt"
	"github.com/Mavwarf/assetgen/internal/paths"
	"github.com/Mavwarf/assetgen/internal/raster"
	"github.com/Mavwarf/assetgen/internal/report"
	"github.com/Mavwarf/assetgen/internal/runner"
	"github.com/Mavwarf/assetgen/internal/webhook"
)

// Pipeline names a sequence of steps and how to present it.
type Pipeline struct {
	Name  string // short id stored in history, e.g. "icons"
	Title string // banner line
	Done  string // success line
	Steps []runner.Step
	List  bool // list the output directory after success
}

// Result is what a run produced.
type Result struct {
	RunID  string
	Assets []raster.Asset
	Err    error
}

// Run executes p with cfg. Failures are reported through rep and
// returned in Result.Err; nothing is retried and files already written
// stay on disk. History, MQTT and webhook problems are only warned about.
func Run(p Pipeline, cfg config.Config, rep *report.Reporter) Result {
	rep.Banner(p.Title)
	started := time.Now()

	var res Result
	if err := os.MkdirAll(cfg.OutputDir, paths.DirPerm); err != nil {
		res.Err = errors.Wrapf(err, "create output dir %s", cfg.OutputDir)
	} else {
		res.Assets, res.Err = runner.Execute(announce(p.Steps, rep), rep.Wrote)
	}

	if res.Err != nil {
		rep.Error(res.Err)
	} else {
		rep.Done(p.Done, cfg.OutputDir)
		if p.List {
			if err := rep.Listing(cfg.OutputDir); err != nil {
				rep.Warn("report", err)
			}
		}
	}

	run := history.Run{Pipeline: p.Name, Started: started, Status: history.StatusOK}
	if res.Err != nil {
		run.Status = history.StatusFailed
		run.Error = res.Err.Error()
	}
	if cfg.History {
		id, err := record(run, res.Assets)
		if err != nil {
			rep.Warn("history", err)
		}
		res.RunID = id
	}

	s := report.Summary{
		Pipeline: p.Name,
		RunID:    res.RunID,
		Status:   run.Status,
		Error:    run.Error,
		Assets:   res.Assets,
	}
	if cfg.MQTT.Enabled() {
		if err := mqtt.PublishSummary(cfg.MQTT, s); err != nil {
			rep.Warn("mqtt", err)
		}
	}
	if cfg.Webhook.Enabled() {
		if err := webhook.SendSummary(cfg.Webhook, s); err != nil {
			rep.Warn("webhook", err)
		}
	}
	return res
}

// announce prints each step's name before it runs.
func announce(steps []runner.Step, rep *report.Reporter) []runner.Step {
	out := make([]runner.Step, len(steps))
	for i, st := range steps {
		out[i] = runner.Step{Name: st.Name, Run: func(emit runner.Sink) error {
			rep.Step(st.Name)
			return st.Run(emit)
		}}
	}
	return out
}

func record(run history.Run, assets []raster.Asset) (string, error) {
	s, err := history.Open(paths.HistoryPath())
	if err != nil {
		return "", err
	}
	defer s.Close()
	return s.Record(run, assets)
}
