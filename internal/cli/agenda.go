// Package cli implements the presenca command tree.
package cli

import (
	"fmt"
	"io"
	"time"

	"presenca/internal/app"
	"presenca/internal/domain/catalog"

	"github.com/spf13/cobra"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's sessions and their absence state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker, cat, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			date, _ := parseDate(nil)
			return renderAgenda(cmd.OutOrStdout(), tracker, cat, date)
		},
	}
}

func agendaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agenda [date]",
		Short: "Show the sessions scheduled for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, cat, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			date, err := parseDate(args)
			if err != nil {
				return err
			}
			return renderAgenda(cmd.OutOrStdout(), tracker, cat, date)
		},
	}
}

// renderAgenda lists the sessions on the date's weekday along with the
// current absence mark for each occurrence.
func renderAgenda(w io.Writer, tracker *app.Tracker, cat *catalog.Catalog, date time.Time) error {
	sessions := cat.SessionsOn(date.Weekday())
	fmt.Fprintf(w, "%s (%s)\n", date.Format("2006-01-02"), date.Weekday())

	if len(sessions) == 0 {
		fmt.Fprintln(w, "  no sessions scheduled")
		return nil
	}

	for _, s := range sessions {
		subject, _ := cat.Subject(s.SubjectID)
		mark := " "
		if tracker.IsAbsent(date, s.ID()) {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %-12s %s\n", mark, s.ID(), subject.Name)
	}
	return nil
}
