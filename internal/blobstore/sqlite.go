package blobstore

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/pvm-hub/internal/blobstore/migrations"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// SQLiteStore keeps namespaces in a single local database file
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database at path and applies migrations.
// Use ":memory:" for a throwaway store.
func NewSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite")
	}
	// one writer; also keeps a :memory: database alive across calls
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite")
	}

	if err := migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite()); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to migrate sqlite")
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the namespace document, or nil if no row exists
func (s *SQLiteStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	if err := validNamespace(namespace); err != nil {
		return nil, err
	}

	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM blobs WHERE namespace = ?`, namespace).Scan(&data)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read namespace %s", namespace)
	}
	return []byte(data), nil
}

// Save upserts the namespace document
func (s *SQLiteStore) Save(ctx context.Context, namespace string, data []byte) error {
	if err := validNamespace(namespace); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (namespace, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (namespace) DO UPDATE
		SET data = excluded.data, updated_at = excluded.updated_at`,
		namespace, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write namespace %s", namespace)
	}
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
