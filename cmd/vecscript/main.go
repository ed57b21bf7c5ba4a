package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/scenario"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
)

var (
	initialCap int
	count      int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vecscript",
		Short:        "replay operation scripts against a growable vector",
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run [script.yaml]",
		Short: "run an operation script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			return runScript(cmd.OutOrStdout(), s)
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the built-in reference scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd.OutOrStdout(), scenario.Demo())
		},
	}

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "plot capacity against length while appending",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotGrowth(cmd.OutOrStdout(), initialCap, count)
		},
	}
	growthCmd.Flags().IntVar(&initialCap, "initial", 0, "initial capacity")
	growthCmd.Flags().IntVar(&count, "count", 64, "number of appends")

	rootCmd.AddCommand(runCmd, demoCmd, growthCmd)
	return rootCmd
}

func runScript(w io.Writer, s *scenario.Script) error {
	res, runErr := scenario.Run(s)
	if res == nil {
		return runErr
	}

	fmt.Fprintln(w, headerStyle.Render("script "+res.Name))
	fmt.Fprintf(w, "%-4s %-12s %5s %5s %6s  %s\n", "#", "op", "len", "cap", "found", "values")
	for _, snap := range res.Snapshots {
		found := "-"
		if snap.Op == scenario.OpSearch || snap.Op == scenario.OpSearchFrom {
			found = fmt.Sprint(snap.Found)
		}
		fmt.Fprintf(w, "%-4d %-12s %5d %5d %6s  %s\n",
			snap.Step, snap.Op, snap.Len, snap.Cap, found, formatValues(snap.Values))
	}
	fmt.Fprintln(w)
	printMetrics(w, res.Metrics, res.Destroyed)

	if runErr != nil {
		fmt.Fprintln(w, errStyle.Render(runErr.Error()))
		return runErr
	}
	return nil
}

func printMetrics(w io.Writer, m vector.VectorMetrics, destroyed int) {
	rows := []struct {
		label string
		value string
	}{
		{"length", fmt.Sprint(m.Len)},
		{"capacity", fmt.Sprint(m.Cap)},
		{"bytes in use", fmt.Sprint(m.SizeInUse)},
		{"bytes reserved", fmt.Sprint(m.Capacity)},
		{"reallocations", fmt.Sprint(m.Reallocs)},
		{"utilization", fmt.Sprintf("%.1f%%", m.Utilization*100)},
		{"destructor calls", fmt.Sprint(destroyed)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", r.label)), valueStyle.Render(r.value))
	}
}

func formatValues(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func plotGrowth(w io.Writer, initial, n int) error {
	if n <= 0 {
		return fmt.Errorf("count must be positive, got %d", n)
	}
	points, m, err := scenario.Growth(initial, n)
	if err != nil {
		return err
	}

	caps := make([]float64, len(points))
	for i, p := range points {
		caps[i] = float64(p.Cap)
	}

	graph := asciigraph.Plot(caps,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("capacity after each append (initial %d)", initial)),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("reallocations"), valueStyle.Render(fmt.Sprint(m.Reallocs)))
	return nil
}
