package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/ucsbapi/internal/db"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Migration is one embedded SQL file
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Migrator manages database migrations
type Migrator struct {
	db *db.PostgresDB
}

// NewMigrator creates a new migrator
func NewMigrator(database *db.PostgresDB) *Migrator {
	return &Migrator{
		db: database,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	_, err := m.db.Pool.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`)
	if err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	err := m.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Up applies every pending migration in version order. Each migration runs in its
// own transaction together with its schema_migrations row.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return err
	}

	migrations, err := LoadMigrations(migrationFiles)
	if err != nil {
		return err
	}

	applied := 0
	for _, migration := range migrations {
		done, err := m.isMigrationApplied(ctx, migration.Version)
		if err != nil {
			return err
		}
		if done {
			logger.Debug().Str("migration", migration.Name).Msg("Migration already applied, skipping")
			continue
		}

		err = m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, migration.SQL); err != nil {
				return fmt.Errorf("error occurred during SQL migration %s: %w", migration.Name, err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, migration.Version); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		applied++
		logger.Info().Str("migration", migration.Name).Msg("Migration applied")
	}

	logger.Info().Int("applied", applied).Int("total", len(migrations)).Msg("Database schema is up to date")
	return nil
}

// LoadMigrations reads sql/NNN_name.sql files from fsys sorted by version
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		base := path.Base(name)
		version, _, ok := strings.Cut(base, "_")
		if !ok || version == "" {
			return nil, fmt.Errorf("migration file %s has no version prefix", base)
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", base, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    base,
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %s", migrations[i].Version)
		}
	}

	return migrations, nil
}
