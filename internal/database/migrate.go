package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"arctic-chronicler/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

const (
	queryMigrationsTableExists = `SELECT COUNT(*) FROM USER_TABLES WHERE TABLE_NAME = 'SCHEMA_MIGRATIONS'`
	queryCreateMigrationsTable = `CREATE TABLE SCHEMA_MIGRATIONS (VERSION VARCHAR2(128) PRIMARY KEY, APPLIED_AT TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)`
	queryMigrationApplied      = `SELECT COUNT(*) FROM SCHEMA_MIGRATIONS WHERE VERSION = :1`
	queryRecordMigration       = `INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (:1)`
)

// Migration is one embedded .up.sql file split into executable statements.
type Migration struct {
	Version    string
	Statements []string
}

// LoadMigrations returns the embedded migrations in version order.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{
			Version:    strings.TrimSuffix(name, ".up.sql"),
			Statements: splitStatements(string(content)),
		})
	}
	return migrations, nil
}

// splitStatements breaks a script on ';' terminators. Oracle executes one statement per call.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		if stmt := strings.TrimSpace(strings.Join(lines, "\n")); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// RunMigrations applies every embedded migration not yet recorded in SCHEMA_MIGRATIONS.
// It returns the versions applied by this call.
func RunMigrations(ctx context.Context, db *sqlx.DB) ([]string, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}
	return applyMigrations(ctx, db, migrations)
}

func applyMigrations(ctx context.Context, db *sqlx.DB, migrations []Migration) ([]string, error) {
	log := logger.Get()

	var tables int
	if err := db.GetContext(ctx, &tables, queryMigrationsTableExists); err != nil {
		return nil, fmt.Errorf("could not inspect schema: %w", err)
	}
	if tables == 0 {
		if _, err := db.ExecContext(ctx, queryCreateMigrationsTable); err != nil {
			return nil, fmt.Errorf("could not create SCHEMA_MIGRATIONS: %w", err)
		}
	}

	var applied []string
	for _, m := range migrations {
		var seen int
		if err := db.GetContext(ctx, &seen, queryMigrationApplied, m.Version); err != nil {
			return applied, fmt.Errorf("could not check migration %s: %w", m.Version, err)
		}
		if seen > 0 {
			log.Debug("Skipping applied migration", zap.String("version", m.Version))
			continue
		}

		// Oracle DDL commits implicitly, so statements are not wrapped in a transaction.
		for _, stmt := range m.Statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("could not execute migration %s: %w", m.Version, err)
			}
		}
		if _, err := db.ExecContext(ctx, queryRecordMigration, m.Version); err != nil {
			return applied, fmt.Errorf("could not record migration %s: %w", m.Version, err)
		}

		log.Info("Executed migration", zap.String("version", m.Version))
		applied = append(applied, m.Version)
	}
	return applied, nil
}
