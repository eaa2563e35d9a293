// Command academy is the operator CLI for the academy database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Nishaantmazarallo/Mini-project/internal/app"
	"github.com/Nishaantmazarallo/Mini-project/internal/config"
	"github.com/Nishaantmazarallo/Mini-project/internal/database"
	"github.com/Nishaantmazarallo/Mini-project/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env carries what every subcommand needs after PersistentPreRunE.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "academy",
		Short:         "Operate the academy database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logger.New(cfg.Observability)
			return nil
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newSeedAdminCmd(e),
		newStatsCmd(e),
		newHealthCmd(e),
	)
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return database.Migrate(cmd.Context(), &e.log, e.cfg)
		},
	}
}

func newSeedAdminCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the admin account from ACADEMY_ADMIN__* unless it exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), e, func(a *app.App) error {
				created, err := a.Services.Admin.EnsureAdmin(cmd.Context(), e.cfg.Admin)
				if err != nil {
					return err
				}
				if created {
					fmt.Fprintln(cmd.OutOrStdout(), "admin user created")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "admin user already exists")
				}
				return nil
			})
		},
	}
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-entity statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), e, func(a *app.App) error {
				report, err := a.Services.Stats.Report(cmd.Context())
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			})
		},
	}
}

func newHealthCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check database connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), e, func(a *app.App) error {
				report := a.Health(cmd.Context())
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
				if report.Status != app.StatusHealthy {
					return fmt.Errorf("service is %s", report.Status)
				}
				return nil
			})
		},
	}
}

func withApp(ctx context.Context, e *env, fn func(*app.App) error) error {
	a, err := app.New(ctx, e.cfg, &e.log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			e.log.Error().Err(err).Msg("closing app")
		}
	}()
	return fn(a)
}
