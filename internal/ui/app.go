// Package ui implements the interactive terminal front end.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ewetherby/dragnet/internal/investigate"
	"github.com/ewetherby/dragnet/internal/report"
)

type phase int

const (
	phaseForm phase = iota
	phaseRunning
	phaseResults
)

// Form field indices. fieldMode is the mode toggle row below the inputs.
const (
	fieldName = iota
	fieldLocation
	fieldAge
	fieldProfession
	fieldMode
	numFields
)

// maxEvents bounds the progress feed kept in memory.
const maxEvents = 200

// App is the root Bubble Tea model. It does not run the pipeline itself;
// the Runner returns Cmds and results arrive as messages.
type App struct {
	runner *Runner

	phase  phase
	inputs [4]textinput.Model
	focus  int
	mode   investigate.Mode

	spin   spinner.Model
	events []string
	found  int

	results   viewport.Model
	rep       *report.Report
	stats     investigate.Stats
	savedPath string

	err    error
	width  int
	height int
	ready  bool
}

// NewApp creates the root model with an empty target form.
func NewApp(runner *Runner) App {
	a := App{
		runner: runner,
		mode:   investigate.ModeAdvanced,
	}

	labels := [4]string{"Jane Doe", "California", "30", "engineer"}
	for i := range a.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 100
		ti.Width = 40
		a.inputs[i] = ti
	}
	a.inputs[fieldName].Focus()

	a.spin = spinner.New()
	a.spin.Spinner = spinner.Dot

	return a
}

// Init starts the cursor blink on the name field.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.results.Width = msg.Width
		a.results.Height = msg.Height - 2
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case spinner.TickMsg:
		if a.phase != phaseRunning {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case ProgressMsg:
		a.appendEvent(msg.Event)
		return a, nil

	case InvestigationDone:
		a.stats = msg.Stats
		if msg.Err != nil {
			a.err = msg.Err
			a.phase = phaseForm
			return a, nil
		}
		a.rep = msg.Report
		a.phase = phaseResults
		a.results.SetContent(report.RenderMarkdown(a.rep))
		a.results.GotoTop()
		return a, nil

	case ReportSaved:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.savedPath = msg.Path
		}
		return a, nil
	}

	return a.updateFocused(msg)
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if a.err != nil {
		a.err = nil
	}

	switch a.phase {
	case phaseForm:
		return a.handleFormKey(msg)
	case phaseRunning:
		// The pipeline cannot be interrupted field by field; quit exits
		// the program and abandons the run.
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	default:
		return a.handleResultsKey(msg)
	}
}

func (a App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit

	case "tab", "down":
		a.setFocus((a.focus + 1) % numFields)
		return a, textinput.Blink

	case "shift+tab", "up":
		a.setFocus((a.focus + numFields - 1) % numFields)
		return a, textinput.Blink

	case "left", "right", " ":
		if a.focus == fieldMode {
			if a.mode == investigate.ModeAdvanced {
				a.mode = investigate.ModeBasic
			} else {
				a.mode = investigate.ModeAdvanced
			}
			return a, nil
		}

	case "enter":
		name := strings.TrimSpace(a.inputs[fieldName].Value())
		if name == "" {
			a.err = fmt.Errorf("a target name is required")
			a.setFocus(fieldName)
			return a, textinput.Blink
		}
		a.phase = phaseRunning
		a.events = a.events[:0]
		a.found = 0
		a.savedPath = ""
		opts := investigate.Options{
			Location:   strings.TrimSpace(a.inputs[fieldLocation].Value()),
			Age:        strings.TrimSpace(a.inputs[fieldAge].Value()),
			Profession: strings.TrimSpace(a.inputs[fieldProfession].Value()),
			Mode:       a.mode,
		}
		return a, tea.Batch(a.spin.Tick, a.runner.Start(name, opts))
	}

	return a.updateFocused(msg)
}

func (a App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "s":
		if a.rep != nil && a.savedPath == "" {
			return a, a.runner.Save(a.rep)
		}
		return a, nil

	case "n":
		// Back to the form for a fresh target.
		a.phase = phaseForm
		a.rep = nil
		a.savedPath = ""
		for i := range a.inputs {
			a.inputs[i].SetValue("")
		}
		a.setFocus(fieldName)
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	a.results, cmd = a.results.Update(msg)
	return a, cmd
}

// updateFocused forwards input to the focused text field.
func (a App) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.phase != phaseForm || a.focus >= len(a.inputs) {
		return a, nil
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFocus(i int) {
	a.focus = i
	for j := range a.inputs {
		if j == i {
			a.inputs[j].Focus()
		} else {
			a.inputs[j].Blur()
		}
	}
}

func (a *App) appendEvent(ev investigate.Event) {
	if ev.Message == "" {
		return
	}
	if strings.HasPrefix(ev.Message, "found ") {
		a.found++
	}
	a.events = append(a.events, ev.Message)
	if len(a.events) > maxEvents {
		a.events = a.events[len(a.events)-maxEvents:]
	}
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("dragnet"))
	b.WriteString("\n\n")

	switch a.phase {
	case phaseForm:
		b.WriteString(a.viewForm())
	case phaseRunning:
		b.WriteString(a.viewRunning())
	default:
		b.WriteString(a.viewResults())
	}

	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Width(a.width).Render("Error: " + a.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(a.viewStatusBar())
	return b.String()
}

func (a App) viewForm() string {
	labels := [4]string{"Name", "Location", "Age", "Profession"}
	var b strings.Builder
	for i, ti := range a.inputs {
		style := LabelStyle
		if a.focus == i {
			style = FocusedLabelStyle
		}
		b.WriteString(style.Render(labels[i]))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}

	modeLabel := LabelStyle
	if a.focus == fieldMode {
		modeLabel = FocusedLabelStyle
	}
	b.WriteString(modeLabel.Render("Mode"))
	b.WriteString(ModeStyle.Render(string(a.mode)))
	b.WriteString(StatusBarText.Render("  (space to toggle)"))
	b.WriteString("\n")
	return b.String()
}

func (a App) viewRunning() string {
	var b strings.Builder
	b.WriteString(a.spin.View())
	b.WriteString(" investigating...\n\n")

	// Show the tail of the feed that fits above the status bar.
	visible := a.height - 7
	if visible < 1 {
		visible = 1
	}
	start := len(a.events) - visible
	if start < 0 {
		start = 0
	}
	for _, line := range a.events[start:] {
		style := EventStyle
		if strings.HasPrefix(line, "found ") {
			style = FoundStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) viewResults() string {
	var b strings.Builder
	if a.rep != nil {
		score := fmt.Sprintf("confidence %.1f/100", a.rep.ConfidenceScore)
		b.WriteString(ScoreStyle(a.rep.ConfidenceScore).Render(score))
		b.WriteString(StatusBarText.Render(fmt.Sprintf("  %d probes, %d errors",
			a.stats.Probes, a.stats.Errors)))
		b.WriteString("\n")
	}
	b.WriteString(a.results.View())
	if a.savedPath != "" {
		b.WriteString("\n")
		b.WriteString(SavedStyle.Render("saved to " + a.savedPath))
	}
	return b.String()
}

func (a App) viewStatusBar() string {
	var hints string
	switch a.phase {
	case phaseForm:
		hints = StatusBarKey.Render("tab") + StatusBarText.Render(" next field  ") +
			StatusBarKey.Render("enter") + StatusBarText.Render(" start  ") +
			StatusBarKey.Render("esc") + StatusBarText.Render(" quit")
	case phaseRunning:
		hints = StatusBarText.Render(fmt.Sprintf("%d found  ", a.found)) +
			StatusBarKey.Render("q") + StatusBarText.Render(" abandon")
	default:
		hints = StatusBarKey.Render("s") + StatusBarText.Render(" save  ") +
			StatusBarKey.Render("n") + StatusBarText.Render(" new target  ") +
			StatusBarKey.Render("q") + StatusBarText.Render(" quit")
	}
	return StatusBar.Width(a.width).Render(hints)
}

// Focus returns the focused field index (for testing).
func (a App) Focus() int {
	return a.focus
}

// Mode returns the selected investigation mode (for testing).
func (a App) Mode() investigate.Mode {
	return a.mode
}

// Events returns the progress feed (for testing).
func (a App) Events() []string {
	return a.events
}
