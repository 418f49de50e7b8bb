package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	identityapp "github.com/CRT1223/tech13-garage/internal/application/identity"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/migration"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/persistence"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// withMigrator opens a migrator for the duration of fn
func (a *app) withMigrator(fn func(m *migration.Migrator) error) error {
	m, err := a.migrator()
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			a.log.Warn("Error closing migrator", zap.Error(err))
		}
	}()
	return fn(m)
}

// withDatabase opens the application database for the duration of fn
func (a *app) withDatabase(fn func(db *persistence.Database) error) error {
	db, err := persistence.NewDatabase(&a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			a.log.Warn("Error closing database", zap.Error(err))
		}
	}()
	return fn(db)
}

func upCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.withMigrator(func(m *migration.Migrator) error { return m.Up() })
		},
	}
}

func downCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !yes {
				return fmt.Errorf("down drops every table; pass --yes to confirm")
			}
			return a.withMigrator(func(m *migration.Migrator) error { return m.Down() })
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm dropping all tables")
	return cmd
}

func stepsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "steps <n>",
		Short: "Apply n migrations, or roll back n when negative",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q", args[0])
			}
			return a.withMigrator(func(m *migration.Migrator) error { return m.Steps(n) })
		},
	}
}

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withMigrator(func(m *migration.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				if version == 0 {
					cmd.Println("No migrations applied")
					return nil
				}
				cmd.Printf("Version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
}

func forceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "force <version>",
		Short: "Set the schema version without running migrations, clearing the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version %q", args[0])
			}
			return a.withMigrator(func(m *migration.Migrator) error { return m.Force(version) })
		},
	}
}

func createCmd(a *app) *cobra.Command {
	var root, description string
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Scaffold an empty up/down pair for every dialect",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := migration.CreateMigration(root, strings.Join(args, " "), description)
			if err != nil {
				return err
			}
			for _, f := range files {
				a.log.Info("Migration created",
					zap.String("dialect", f.Dialect),
					zap.String("version", f.Version),
					zap.String("up_file", f.UpPath),
					zap.String("down_file", f.DownPath),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "dir", defaultMigrationsRoot, "migrations root holding one directory per dialect")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description written into the file header")
	return cmd
}

func listCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List migration files for the configured dialect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := migration.ListMigrations(filepath.Join(root, a.dialect()))
			if err != nil {
				return err
			}
			if len(names) == 0 {
				cmd.Println("No migrations found")
				return nil
			}
			for _, n := range names {
				cmd.Println("  -", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "dir", defaultMigrationsRoot, "migrations root holding one directory per dialect")
	return cmd
}

func seedCmd(a *app) *cobra.Command {
	var opts seed.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the starter catalog, and demo content with --demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDatabase(func(db *persistence.Database) error {
				seeder := seed.New(seed.Repositories{
					Users:      persistence.NewGormUserRepository(db.DB),
					Categories: persistence.NewGormCategoryRepository(db.DB),
					Products:   persistence.NewGormProductRepository(db.DB),
					Services:   persistence.NewGormServiceRepository(db.DB),
					Reviews:    persistence.NewGormReviewRepository(db.DB),
					Team:       persistence.NewGormTeamMemberRepository(db.DB),
					Awards:     persistence.NewGormAwardRepository(db.DB),
				}, a.log)
				res, err := seeder.Run(cmd.Context(), opts)
				if err != nil {
					return err
				}
				cmd.Printf("Seeded %d categories, %d products, %d services, %d team members, %d awards, %d customers, %d reviews\n",
					res.Categories, res.Products, res.Services, res.TeamMembers, res.Awards, res.Customers, res.Reviews)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opts.Demo, "demo", false, "also create team members, awards, fake customers and reviews")
	cmd.Flags().IntVar(&opts.Customers, "customers", 10, "number of fake customers with --demo")
	cmd.Flags().Uint64Var(&opts.RandSeed, "rand-seed", 0, "seed for reproducible fake data (0 = random)")
	return cmd
}

func resetAdminCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-admin",
		Short: "Restore the default admin account and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDatabase(func(db *persistence.Database) error {
				users := identityapp.NewUserService(persistence.NewGormUserRepository(db.DB), a.log)
				admin, err := users.ResetAdmin(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("Admin account %q (id %d) reset; log in with the default password and change it\n",
					admin.Username, admin.ID)
				return nil
			})
		},
	}
}
