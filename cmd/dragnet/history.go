package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewetherby/dragnet/internal/report"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past investigations",
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, err := openHistory()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer hist.Close()

		entries, err := hist.List(flagHistoryLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No investigations recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-24s  %-8s  %-10s  %s\n", "ID", "NAME", "MODE", "CONFIDENCE", "DATE")
		for _, e := range entries {
			fmt.Printf("%-36s  %-24s  %-8s  %-10.1f  %s\n",
				e.ID, e.Name, e.Mode, e.Confidence, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, err := openHistory()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer hist.Close()

		rep, err := hist.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(report.RenderMarkdown(rep))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "max entries to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
