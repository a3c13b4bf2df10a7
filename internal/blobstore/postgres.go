package blobstore

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/pvm-hub/internal/blobstore/migrations"
	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// PostgresStore keeps namespaces as JSONB rows in the blobs table
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to dsn, applies migrations and returns a ready store
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("postgres DSN is required")
	}

	if err := migratePostgres(ctx, dsn); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to migrate postgres")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping postgres")
	}

	return &PostgresStore{pool: pool}, nil
}

func migratePostgres(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sql connection for migrations")
	}
	defer func() { _ = sqlDB.Close() }()

	return migrate(ctx, sqlDB, goose.DialectPostgres, migrations.Postgres())
}

// Load returns the namespace document, or nil if no row exists
func (p *PostgresStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	if err := validNamespace(namespace); err != nil {
		return nil, err
	}

	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT data FROM blobs WHERE namespace = $1`, namespace).Scan(&data)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read namespace %s", namespace)
	}
	return data, nil
}

// Save upserts the namespace document
func (p *PostgresStore) Save(ctx context.Context, namespace string, data []byte) error {
	if err := validNamespace(namespace); err != nil {
		return err
	}

	_, err := p.pool.Exec(ctx, `
		INSERT INTO blobs (namespace, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (namespace) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		namespace, string(data))
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write namespace %s", namespace)
	}
	return nil
}

// Close releases the connection pool
func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
