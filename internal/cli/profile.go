// Package cli implements the presenca command tree.
package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile [name]",
		Short: "Show or set the display name used in the ranking",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, _, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer tracker.Flush()
			offlineNotice(cmd, tracker)

			name := ""
			if len(args) == 1 {
				name = args[0]
			}

			if name == "" && !tracker.NeedsProfile() {
				fmt.Fprintf(cmd.OutOrStdout(), "user id:      %s\n", tracker.UserID())
				fmt.Fprintf(cmd.OutOrStdout(), "display name: %s\n", tracker.DisplayName())
				return nil
			}

			if name == "" {
				name, err = promptName(cmd)
				if err != nil {
					return err
				}
			}

			if err := tracker.SaveProfile(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "profile saved as %q\n", strings.TrimSpace(name))
			return nil
		},
	}
}

// promptName asks for a display name on first use, when the identity has no
// row in the ranking yet.
func promptName(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "choose a display name for the ranking: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read display name: %w", err)
	}
	return strings.TrimSpace(line), nil
}
