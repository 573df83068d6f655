package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "marketplace"
	"marketplace/internal/config"
	"marketplace/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand. It brings the service
// tables (goose) and the River job tables to their latest version, or only
// reports where they stand with --status.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the marketplace and job queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "migrations need a non-transactional connection")
			}

			if statusOnly {
				if err := migrationStatus(ctx, db); err != nil {
					logger.Fatal(ctx, "could not read migration status", zap.Error(err))
				}

				return
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate marketplace tables", zap.Error(err))
			}
			if err := migrateJobQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate job queue tables", zap.Error(err))
			}
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "only report applied and pending migrations")

	return cmd
}

func schemaProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	provider, err := schemaProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "applied migration",
			zap.Int64("version", res.Source.Version),
			zap.String("path", res.Source.Path),
			zap.Duration("took", res.Duration))
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	logger.Info(ctx, "marketplace tables are up to date", zap.Int64("version", version), zap.Int("applied", len(results)))

	return nil
}

func migrateJobQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	// a zero target version migrates all the way up
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river migrations: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river migration", zap.Int("version", v.Version), zap.Duration("took", v.Duration))
	}

	latest := migrator.AllVersions()
	logger.Info(ctx, "job queue tables are up to date",
		zap.Int("version", latest[len(latest)-1].Version),
		zap.Int("applied", len(res.Versions)))

	return nil
}

func migrationStatus(ctx context.Context, db *sql.DB) error {
	provider, err := schemaProvider(db)
	if err != nil {
		return err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("could not read goose status: %w", err)
	}
	for _, s := range statuses {
		logger.Info(ctx, "marketplace migration",
			zap.Int64("version", s.Source.Version),
			zap.String("path", s.Source.Path),
			zap.String("state", string(s.State)))
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not read river migrations: %w", err)
	}
	current := 0
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	all := migrator.AllVersions()
	logger.Info(ctx, "job queue migrations",
		zap.Int("current", current),
		zap.Int("latest", all[len(all)-1].Version))

	return nil
}
