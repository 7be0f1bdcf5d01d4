package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"vidtube/config"
	"vidtube/internal/errors"
	logs "vidtube/internal/infra/log"
	"vidtube/internal/infra/persistence/postgres"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back -steps migrations (default 1)
// - version: print the current schema version

func main() {
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "up", "version":
	case "down":
		_ = downCmd.Parse(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	var runErr error
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(func(cfg *config.Config, db *gorm.DB, logger *slog.Logger) {
			runErr = run(cfg, db, logger, command, *downSteps)
		}),
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
	_ = app.Stop(ctx)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", runErr)
		os.Exit(1)
	}
}

func run(cfg *config.Config, db *gorm.DB, logger *slog.Logger, command string, steps int) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	source := cfg.Migrations.Source
	if source == "" {
		source = "file://migrations"
	}

	m, err := migrate.NewWithDatabaseInstance(source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-steps)
	case "version":
		return printVersion(m, logger)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", command)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No migrations to apply")
	}

	return printVersion(m, logger)
}

func printVersion(m *migrate.Migrate, logger *slog.Logger) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		logger.Info("No migration applied yet")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read migration version")
	}

	logger.Info("Schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                Apply all pending migrations")
	fmt.Println("  down -steps N     Roll back N migrations (default 1)")
	fmt.Println("  version           Print the current schema version")
}
