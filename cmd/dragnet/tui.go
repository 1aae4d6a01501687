package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ewetherby/dragnet/internal/logging"
	"github.com/ewetherby/dragnet/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run interactive terminal interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := &ui.Runner{
			Prober:  newProber(),
			Advisor: newAdvisor(false),
		}
		if hist, err := openHistory(); err == nil {
			defer hist.Close()
			runner.History = hist
		} else {
			logging.Warn("history database unavailable", "error", err)
		}

		p := tea.NewProgram(ui.NewApp(runner), tea.WithAltScreen())
		runner.SetSend(p.Send)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("terminal interface failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
