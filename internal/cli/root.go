// Package cli implements the presenca command tree.
package cli

import (
	"context"
	"fmt"
	"time"

	"presenca/internal/adapters/rest"
	"presenca/internal/app"
	"presenca/internal/config"
	"presenca/internal/domain/absence"
	"presenca/internal/domain/catalog"
	"presenca/internal/identity"
	"presenca/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	version = "0.1.0"
	appName = "presenca"
)

// Execute runs the command tree and returns the first error encountered.
func Execute(ctx context.Context) error {
	return rootCmd().ExecuteContext(ctx)
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Personal class attendance tracker",
		Long:          "Presenca tracks class absences against the 25% quota and keeps a shared attendance ranking in sync.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		todayCmd(),
		agendaCmd(),
		statsCmd(),
		rankingCmd(),
		toggleCmd(),
		profileCmd(),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	}
}

// bootstrap loads config, resolves the local identity and returns a tracker
// that has already attempted an initial sync.
func bootstrap(ctx context.Context) (*app.Tracker, *catalog.Catalog, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("set log level: %w", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	userID, err := identity.Bootstrap(cfg.StateDir)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap identity: %w", err)
	}

	client := rest.New(cfg.BaseURL,
		rest.WithTimeout(time.Duration(cfg.RequestTimeoutMS)*time.Millisecond))

	tracker := app.New(userID, cat, client)
	tracker.Refresh(ctx)
	return tracker, cat, nil
}

// parseDate interprets an optional YYYY-MM-DD argument, defaulting to today.
func parseDate(args []string) (time.Time, error) {
	if len(args) == 0 {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(absence.DateLayout, args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", args[0])
	}
	return d, nil
}

// offlineNotice prints the cached-data warning when the last network attempt
// failed.
func offlineNotice(cmd *cobra.Command, tracker *app.Tracker) {
	if !tracker.Online() {
		fmt.Fprintln(cmd.ErrOrStderr(), "offline: server unreachable, showing local data")
	}
}
