// Package cli implements the presenca command tree.
package cli

import (
	"fmt"
	"io"

	"presenca/internal/domain/types"

	"github.com/spf13/cobra"
)

func rankingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ranking",
		Short: "Show the shared attendance ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			renderRanking(cmd.OutOrStdout(), tracker.Ranking(), tracker.UserID())
			return nil
		},
	}
}

// renderRanking prints the leaderboard, marking the local user's row.
func renderRanking(w io.Writer, entries []types.RankingEntry, selfID string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no ranking data yet")
		return
	}

	fmt.Fprintf(w, "%4s %-24s %8s\n", "POS", "NAME", "PRESENTS")
	for i, e := range entries {
		self := ""
		if e.UserID == selfID {
			self = "  (you)"
		}
		name := e.DisplayName
		if name == "" {
			name = e.UserID
		}
		fmt.Fprintf(w, "%4d %-24s %8d%s\n", i+1, name, e.TotalPresents, self)
	}
}
