package main

import (
	"fmt"
	"os"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/logger"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/migration"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultMigrationsRoot = "internal/infrastructure/migration/sql"

// app carries what every subcommand needs; it is filled in by the root PersistentPreRunE
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	logLevel string
}

func (a *app) dialect() string {
	if a.cfg.Database.IsSQLite() {
		return migration.DialectSQLite
	}
	return migration.DialectPostgres
}

func (a *app) migrator() (*migration.Migrator, error) {
	return migration.NewFromURL(a.cfg.Database.MigrationURL(), a.dialect(), a.log)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Schema migrations and data maintenance for tech13-garage",
		Long: `migrate applies the embedded schema migrations to the configured database,
scaffolds new migration files and loads seed data.

Configuration comes from config.toml and GARAGE_* environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(&logger.Config{
				Level:  a.logLevel,
				Format: "console",
				Output: "stdout",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.log, a.cfg = log, cfg
			log.Debug("Migration CLI started",
				zap.String("command", cmd.Name()),
				zap.String("driver", cfg.Database.Driver),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		upCmd(a),
		downCmd(a),
		stepsCmd(a),
		versionCmd(a),
		forceCmd(a),
		createCmd(a),
		listCmd(a),
		seedCmd(a),
		resetAdminCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
