package blobstore

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/pvm-hub/internal/errors"
)

// migrate applies every pending migration in fsys to db
func migrate(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS) error {
	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return errors.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to run %s migrations", dialect)
	}
	for _, r := range results {
		slog.Info("Applied migration", "dialect", dialect, "source", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
