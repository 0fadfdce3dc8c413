package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/checkin/backend/internal/config"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply SQL migrations to the postgres store",
	Long:  `Apply every *.sql file in the migrations directory, in lexical order, recording applied files in schema_migrations.`,
	RunE:  runMigrate,
}

var (
	migrationsDir string
)

func init() {
	migrateCmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "Directory containing *.sql migrations")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required to run migrations")
	}

	log := newLogger(cfg)

	files, err := migrationFiles(migrationsDir)
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := openPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name text PRIMARY KEY,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied := 0
	for _, file := range files {
		name := filepath.Base(file)

		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", name, err)
		}
		if exists {
			log.Debug("migration already applied", logger.String("name", name))
			continue
		}

		sql, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(sql)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}

		log.Info("applied migration", logger.String("name", name))
		applied++
	}

	log.Info("migrations complete", logger.Int("applied", applied), logger.Int("total", len(files)))
	return nil
}

// migrationFiles lists *.sql files in dir in lexical order
func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("invalid migrations directory %q: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations found in %q", dir)
	}
	sort.Strings(files)
	return files, nil
}
