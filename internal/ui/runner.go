package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ewetherby/dragnet/internal/advisory"
	"github.com/ewetherby/dragnet/internal/investigate"
	"github.com/ewetherby/dragnet/internal/logging"
	"github.com/ewetherby/dragnet/internal/probe"
	"github.com/ewetherby/dragnet/internal/report"
	"github.com/ewetherby/dragnet/internal/store"
)

// Runner bridges the UI loop and the investigation pipeline. The Bubble Tea
// program must be created before SetSend is called; until then progress
// events are dropped.
type Runner struct {
	Prober  *probe.Prober
	Advisor advisory.Client
	History *store.Store // optional

	send func(tea.Msg)
}

// SetSend wires the program's Send function so pipeline goroutines can
// push progress messages into the UI loop.
func (r *Runner) SetSend(f func(tea.Msg)) {
	r.send = f
}

// Start returns a Cmd running one full investigation in the background.
func (r *Runner) Start(name string, opts investigate.Options) tea.Cmd {
	opts.OnEvent = func(ev investigate.Event) {
		if r.send != nil {
			r.send(ProgressMsg{Event: ev})
		}
	}

	return func() tea.Msg {
		inv := investigate.New(r.Prober, r.Advisor, opts)
		rep, err := inv.Run(context.Background(), name)
		if err == nil && r.History != nil {
			if herr := r.History.SaveReport(rep); herr != nil {
				logging.Warn("failed to record investigation history", "error", herr)
			}
		}
		return InvestigationDone{Report: rep, Stats: inv.Stats(), Err: err}
	}
}

// Save returns a Cmd that writes the report JSON next to the working
// directory using the default filename.
func (r *Runner) Save(rep *report.Report) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Save(rep, "")
		return ReportSaved{Path: path, Err: err}
	}
}
