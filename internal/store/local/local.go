// Package local implements the on-device sqlite backend. It owns the database
// while no user is signed in; after migration, ownership of copied records
// moves to the cloud backend and never comes back.
package local

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/anpt04/thuchi/internal/model"
	"github.com/anpt04/thuchi/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the sqlite backend. The zero value is unusable; construct it with
// Open and release it with Close.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the database at path, applies pending
// migrations and seeds the default categories. It is safe to call on every
// startup; seeding never duplicates rows.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.SeedDefaults(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	log.Debug().Str("path", path).Msg("local store opened")
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// ready guards every operation against use before Open or after Close.
func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return store.ErrNotInitialized
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// SeedDefaults inserts the default category set, skipping ids that already
// exist. Open runs it on every start; a reset runs it again afterwards.
func (s *Store) SeedDefaults(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, c := range model.DefaultCategories() {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories(id, name, kind) VALUES(?, ?, ?)`,
			c.ID, c.Name, string(c.Kind))
		if err != nil {
			return err
		}
	}
	return nil
}

// WithTx runs fn in a transaction.
func (s *Store) WithTx(fn func(tx *sql.Tx) error) error {
	if err := s.ready(); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
