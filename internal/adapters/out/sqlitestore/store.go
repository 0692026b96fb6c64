// Package sqlitestore implements the registry store on a SQLite database.
//
// The store keeps the same full-snapshot contract as the JSON file: Load
// returns every row and Save replaces the table inside a single transaction.
package sqlitestore

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/Wrap-pixelz/domain-hoster/internal/boundaries/out"
	"github.com/Wrap-pixelz/domain-hoster/internal/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Ensure Store implements out.RegistryStore.
var _ out.RegistryStore = (*Store)(nil)

// Store is a RegistryStore backed by SQLite.
type Store struct {
	db  *sqlx.DB
	log zerowrap.Logger
}

// dbDomain is a registry row.
type dbDomain struct {
	Name   string `db:"name"`
	Port   int    `db:"port"`
	Status string `db:"status"`
}

// Open connects to the database at path, creating its directory, and applies
// pending migrations.
func Open(path string, log zerowrap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlitestore").
		Str("path", path).
		Msg("registry database opened")

	return &Store{db: db, log: log}, nil
}

// dsn builds a modernc.org/sqlite DSN. The driver applies each _pragma on
// every new connection.
func dsn(path string) string {
	return "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

func migrate(db *sqlx.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return fmt.Errorf("setting dialect for migrations: %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Close terminates the database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing registry db: %w", err)
	}
	return nil
}

// Load returns every registered domain.
func (s *Store) Load(ctx context.Context) (domain.Registry, error) {
	var rows []dbDomain
	if err := s.db.SelectContext(ctx, &rows, `SELECT name, port, status FROM domains`); err != nil {
		return nil, fmt.Errorf("retrieving domains: %w", err)
	}

	registry := make(domain.Registry, len(rows))
	for _, row := range rows {
		registry[row.Name] = domain.DomainRecord{
			Port:   row.Port,
			Status: domain.DomainStatus(row.Status),
		}
	}
	return registry, nil
}

// Save replaces the stored registry with the given snapshot.
func (s *Store) Save(ctx context.Context, registry domain.Registry) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM domains`); err != nil {
		return fmt.Errorf("clearing domains: %w", err)
	}

	if len(registry) > 0 {
		rows := make([]dbDomain, 0, len(registry))
		for name, record := range registry {
			rows = append(rows, dbDomain{Name: name, Port: record.Port, Status: string(record.Status)})
		}

		query := `INSERT INTO domains (name, port, status) VALUES (:name, :port, :status)`
		if _, err := tx.NamedExecContext(ctx, query, rows); err != nil {
			return fmt.Errorf("inserting domains: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing domains: %w", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "sqlitestore").
		Int(zerowrap.FieldCount, len(registry)).
		Msg("registry saved")

	return nil
}
