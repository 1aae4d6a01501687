package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ewetherby/dragnet/internal/advisory"
	"github.com/ewetherby/dragnet/internal/investigate"
	"github.com/ewetherby/dragnet/internal/logging"
	"github.com/ewetherby/dragnet/internal/report"
)

var (
	flagName       string
	flagLocation   string
	flagAge        string
	flagProfession string
	flagMode       string
	flagOutput     string
	flagNoAdvisory bool
	flagNarrate    bool
	flagQuiet      bool
)

var investigateCmd = &cobra.Command{
	Use:   "investigate",
	Short: "Run an investigation against a target name",
	Long: `Runs the full pipeline for one target. With --name absent the target
details are prompted for interactively. The report is printed as a
summary and written to a JSON file.`,
	RunE: runInvestigate,
}

func init() {
	investigateCmd.Flags().StringVar(&flagName, "name", "", "target full name")
	investigateCmd.Flags().StringVar(&flagLocation, "location", "", "location hint (e.g. California)")
	investigateCmd.Flags().StringVar(&flagAge, "age", "", "approximate age hint")
	investigateCmd.Flags().StringVar(&flagProfession, "profession", "", "profession hint")
	investigateCmd.Flags().StringVar(&flagMode, "mode", "advanced", "investigation mode: basic or advanced")
	investigateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "report output path (default report_<name>_<time>.json)")
	investigateCmd.Flags().BoolVar(&flagNoAdvisory, "no-advisory", false, "skip the AI advisory service, use rule-based candidates")
	investigateCmd.Flags().BoolVar(&flagNarrate, "narrate", false, "ask the advisory service for a prose summary of the findings")
	investigateCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the live progress feed")
	rootCmd.AddCommand(investigateCmd)
}

func runInvestigate(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(flagName)
	location := flagLocation
	age := flagAge
	profession := flagProfession

	if name == "" {
		name, location, age, profession = promptTarget()
		if name == "" {
			return fmt.Errorf("a target name is required")
		}
	}

	mode, err := parseMode(flagMode)
	if err != nil {
		return err
	}

	opts := investigate.Options{
		Location:       location,
		Age:            age,
		Profession:     profession,
		Mode:           mode,
		Concurrency:    cfg.Probing.Concurrency,
		UsernameBudget: cfg.Probing.UsernameBudget,
		LinkHubBudget:  cfg.Probing.LinkHubBudget,
	}
	if !flagQuiet {
		opts.OnEvent = func(ev investigate.Event) {
			fmt.Printf("  [%s] %s\n", ev.State, ev.Message)
		}
	}

	advisor := newAdvisor(flagNoAdvisory)
	inv := investigate.New(newProber(), advisor, opts)

	fmt.Printf("Investigating %q (%s mode)...\n", name, mode)
	rep, err := inv.Run(cmd.Context(), name)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(renderReport(cmd.Context(), rep, advisor))

	path, err := report.Save(rep, flagOutput)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	fmt.Printf("\nReport saved to %s\n", path)

	if hist, herr := openHistory(); herr == nil {
		defer hist.Close()
		if herr = hist.SaveReport(rep); herr != nil {
			logging.Warn("failed to record history", "error", herr)
		}
	} else {
		logging.Warn("history database unavailable", "error", herr)
	}

	return nil
}

// renderReport prefers the advisory service's prose narration when asked
// for, falling back to the deterministic renderer on any failure.
func renderReport(ctx context.Context, rep *report.Report, advisor advisory.Client) string {
	if flagNarrate {
		if ds, ok := advisor.(*advisory.DeepSeekClient); ok && ds.Available() {
			if data, err := report.Encode(rep); err == nil {
				if prose, err := ds.Narrate(ctx, string(data)); err == nil {
					return prose + "\n"
				} else {
					logging.Warn("narration failed, using plain summary", "error", err)
				}
			}
		}
	}
	return report.RenderMarkdown(rep)
}

func parseMode(s string) (investigate.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return investigate.ModeBasic, nil
	case "advanced", "":
		return investigate.ModeAdvanced, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want basic or advanced)", s)
	}
}

// promptTarget collects target details interactively on stdin.
func promptTarget() (name, location, age, profession string) {
	r := bufio.NewReader(os.Stdin)
	name = promptLine(r, "Target name: ")
	location = promptLine(r, "Location (optional): ")
	age = promptLine(r, "Age (optional): ")
	profession = promptLine(r, "Profession (optional): ")
	return
}

func promptLine(r *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	line, _ := r.ReadString('\n')
	return strings.TrimSpace(line)
}
