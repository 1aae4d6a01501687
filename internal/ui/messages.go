package ui

import (
	"github.com/ewetherby/dragnet/internal/investigate"
	"github.com/ewetherby/dragnet/internal/report"
)

// ProgressMsg carries one investigation progress event into the UI loop.
type ProgressMsg struct {
	Event investigate.Event
}

// InvestigationDone signals the pipeline finished (or failed to start).
type InvestigationDone struct {
	Report *report.Report
	Stats  investigate.Stats
	Err    error
}

// ReportSaved signals a save-to-disk attempt finished.
type ReportSaved struct {
	Path string
	Err  error
}
