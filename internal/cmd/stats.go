package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/flowpomo/internal/domain"
	"github.com/renato0307/flowpomo/internal/services"
	"github.com/renato0307/flowpomo/internal/ui"
)

// StatsCmd shows focus time per category
type StatsCmd struct {
	Filter string `help:"Time filter (pro only): all, day, week or month" enum:"all,day,week,month" default:"all"`
	Format string `help:"Output format (table or tally)" default:"table" enum:"table,tally"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	userID := cli.LocalUser()
	if userID == "" {
		return domain.ErrNoIdentity
	}

	filter, err := domain.ParseTimeFilter(s.Filter)
	if err != nil {
		return err
	}

	summary, err := cli.Container.StatsService.Summary(context.Background(), services.SummaryParams{
		Filter: filter,
		Pro:    cli.Container.Settings.IsPro(),
		UserID: userID,
	})
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	if filter != domain.FilterAll && !summary.FilterApplied {
		fmt.Println("Time filters need the pro flag; showing all sessions.")
		fmt.Println()
	}

	if len(summary.Sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	switch s.Format {
	case "tally":
		renderStatsTally(summary)
	default:
		return renderStatsTable(summary)
	}
	return nil
}

// renderStatsTable prints one row per category plus a total
func renderStatsTable(summary *services.Summary) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOLOR\tTIME")
	for _, total := range summary.Totals {
		fmt.Fprintf(w, "%s\t%s\t%s\n", total.Name, total.Color, domain.FormatDuration(total.Seconds))
	}
	fmt.Fprintf(w, "%s\t\t\n", strings.Repeat("─", 8))
	fmt.Fprintf(w, "Total (%d sessions)\t\t%s\n", len(summary.Sessions), domain.FormatDuration(summary.TotalSeconds))
	return w.Flush()
}

// renderStatsTally prints tally marks, one per focused minute
func renderStatsTally(summary *services.Summary) {
	for _, total := range summary.Totals {
		fmt.Printf("%-16s %s\n", total.Name, ui.RenderTally(domain.Tally(total.Seconds)))
	}
	fmt.Printf("%-16s %s\n", "Total", ui.RenderTally(domain.Tally(summary.TotalSeconds)))
}
