// Package cli implements the presenca command tree.
package cli

import (
	"fmt"
	"strings"

	"presenca/internal/domain/catalog"

	"github.com/spf13/cobra"
)

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <session-id> [date]",
		Short: "Mark or unmark an absence for a session occurrence",
		Long:  "Toggles the absence record for a session on a date (default today). Session ids look like 76B3-19:10; run agenda to list them.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cat, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			sessionID := args[0]
			if err := validateSessionID(cat, sessionID); err != nil {
				return err
			}

			date, err := parseDate(args[1:])
			if err != nil {
				return err
			}

			marked, err := tracker.Toggle(cmd.Context(), date, sessionID)
			if err != nil {
				return err
			}

			if marked {
				fmt.Fprintf(cmd.OutOrStdout(), "absence recorded for %s on %s\n", sessionID, date.Format("2006-01-02"))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "absence removed for %s on %s\n", sessionID, date.Format("2006-01-02"))
			}
			return nil
		},
	}
}

// validateSessionID rejects ids that are not in the session catalog so typos
// never reach the server.
func validateSessionID(cat *catalog.Catalog, sessionID string) error {
	known := make([]string, 0)
	for _, s := range cat.Sessions() {
		if s.ID() == sessionID {
			return nil
		}
		known = append(known, s.ID())
	}
	return fmt.Errorf("unknown session %q, known sessions: %s", sessionID, strings.Join(known, ", "))
}
