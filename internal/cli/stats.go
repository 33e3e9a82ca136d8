// Package cli implements the presenca command tree.
package cli

import (
	"fmt"
	"io"

	"presenca/internal/domain/quota"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-subject absence quotas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			stats := tracker.Stats()
			renderStats(cmd.OutOrStdout(), stats)
			fmt.Fprintf(cmd.OutOrStdout(), "\ntotal presents: %d\n", quota.TotalPresents(stats))
			return nil
		},
	}
}

// renderStats prints one line per subject with the quota numbers that drive
// the danger warning.
func renderStats(w io.Writer, stats []quota.Stat) {
	fmt.Fprintf(w, "%-6s %-28s %8s %8s %10s %8s\n",
		"ID", "SUBJECT", "ABSENT", "QUOTA", "REMAINING", "USED")

	for _, s := range stats {
		warn := ""
		if s.Danger() {
			warn = "  !! quota almost spent"
		}
		fmt.Fprintf(w, "%-6s %-28s %8d %8.1f %10.1f %7.1f%%%s\n",
			s.ID, s.Name, s.Absences, s.MaxHoursAllowed, s.RemainingAllowance, s.QuotaUsedPercent(), warn)
	}
}
