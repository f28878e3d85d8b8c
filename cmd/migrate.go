// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/appfluzzio-bit/fluzz2/migrations"
)

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down [version]|status|check]",
	Short:     "Run database migrations",
	Long:      `Run the embedded database migrations, "up" when no command is given`,
	Args:      migrateArgs,
	ValidArgs: []string{"up", "down", "status", "check"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command, version := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}

		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}

		format, _ := cmd.Flags().GetString("format")

		m, closeDB, err := newMigrator(cmd.Context(), dsn, format, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeDB()

		return m.run(cmd.Context(), command, version)
	},
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to the DSN environment variable")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

type migrator struct {
	provider *goose.Provider
	format   string
	out      io.Writer
}

func newMigrator(ctx context.Context, dsn, format string, out io.Writer) (*migrator, func(), error) {
	if dsn == "" {
		return nil, nil, fmt.Errorf("no DSN provided, use --dsn or the DSN environment variable")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("DSN validation failed, shutting down, err: %v", err)
	}

	db := stdlib.OpenDB(*config)
	closeDB := func() { _ = db.Close() }

	if err := db.PingContext(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("DB connection failed, shutting down, err: %v", err)
	}

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return &migrator{provider: provider, format: format, out: out}, closeDB, nil
}

func (m *migrator) run(ctx context.Context, command string, version int64) error {
	switch command {
	case "up":
		results, err := m.provider.Up(ctx)
		if err != nil {
			return err
		}

		return m.report(results)
	case "down":
		return m.down(ctx, version)
	case "status":
		return m.status(ctx)
	case "check":
		return m.check(ctx)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

func (m *migrator) down(ctx context.Context, version int64) error {
	if version >= 0 {
		results, err := m.provider.DownTo(ctx, version)
		if err != nil {
			return err
		}

		return m.report(results)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return err
	}

	return m.report([]*goose.MigrationResult{result})
}

// report prints the applied migrations, JSON output always carries a list
func (m *migrator) report(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if m.format == "json" {
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "No migrations to apply")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%-5s %s (%s)\n", r.Direction, r.Source.Path, r.Duration.Round(time.Millisecond))
	}

	return nil
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.format == "json" {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}

		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}

	return w.Flush()
}

// check fails while migrations are pending so it can gate deployments
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, verErr := m.provider.GetDBVersion(ctx)

	if pending {
		if verErr != nil {
			return fmt.Errorf("migrations are pending (failed to get current version: %v)", verErr)
		}

		if m.format == "json" {
			return json.NewEncoder(m.out).Encode(map[string]interface{}{"status": "pending", "version": current})
		}

		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	if m.format == "json" {
		status := "ok"
		if verErr != nil {
			status = "unknown"
		}

		return json.NewEncoder(m.out).Encode(map[string]interface{}{"status": status, "version": current})
	}

	if verErr != nil {
		fmt.Fprintln(m.out, "Database is up to date")
	} else {
		fmt.Fprintf(m.out, "Database is up to date (version %d)\n", current)
	}

	return nil
}
