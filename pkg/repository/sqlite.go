package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/secmon-lab/sprintboard/pkg/domain/interfaces"
	"github.com/secmon-lab/sprintboard/pkg/domain/model"
	"github.com/secmon-lab/sprintboard/pkg/domain/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS timeline_sources (
	id TEXT PRIMARY KEY,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS timeline_items (
	source TEXT NOT NULL,
	id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	fields TEXT NOT NULL,
	imported_at TEXT NOT NULL,
	PRIMARY KEY (source, id)
);

CREATE INDEX IF NOT EXISTS idx_timeline_items_source_seq ON timeline_items(source, seq);
`

// SQLite implements Repository interface with a local SQLite database. Each
// item is one row holding its raw fields as JSON, like a tracker sync table.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file at path and applies the schema
func NewSQLite(ctx context.Context, path string) (interfaces.Repository, error) {
	if path == "" {
		return nil, goerr.New("sqlite path is empty")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	// A single connection keeps writers serialized and makes ":memory:" usable
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to apply sqlite schema", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("SQLite repository initialized successfully", "path", path)

	return &SQLite{db: db}, nil
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// PutRecords upserts records of a source
func (s *SQLite) PutRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}
	return s.write(ctx, source, records, false)
}

// ReplaceRecords drops existing records of a source and inserts the given ones
func (s *SQLite) ReplaceRecords(ctx context.Context, source types.SourceID, records []*model.TimelineRecord) error {
	if err := validateRecords(source, records); err != nil {
		return err
	}
	return s.write(ctx, source, records, true)
}

func (s *SQLite) write(ctx context.Context, source types.SourceID, records []*model.TimelineRecord, replace bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO timeline_sources (id, updated_at)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at
	`, source.String(), nowUTC()); err != nil {
		return goerr.Wrap(err, "failed to save source", goerr.V("source", source))
	}

	if replace {
		if _, err := tx.ExecContext(ctx, "DELETE FROM timeline_items WHERE source = ?", source.String()); err != nil {
			return goerr.Wrap(err, "failed to clear records", goerr.V("source", source))
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO timeline_items (source, id, seq, fields, imported_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(source, id) DO UPDATE SET
			seq = excluded.seq,
			fields = excluded.fields,
			imported_at = excluded.imported_at
	`)
	if err != nil {
		return goerr.Wrap(err, "failed to prepare record statement")
	}
	defer stmt.Close()

	for _, r := range records {
		fields, err := json.Marshal(r.Fields)
		if err != nil {
			return goerr.Wrap(err, "failed to encode record fields", goerr.V("id", r.ID))
		}
		if _, err := stmt.ExecContext(ctx,
			source.String(), r.ID.String(), r.Seq, string(fields),
			r.ImportedAt.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return goerr.Wrap(err, "failed to save record", goerr.V("source", source), goerr.V("id", r.ID))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit records", goerr.V("source", source))
	}
	return nil
}

func (s *SQLite) sourceExists(ctx context.Context, source types.SourceID) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM timeline_sources WHERE id = ?", source.String()).Scan(&count)
	if err != nil {
		return false, goerr.Wrap(err, "failed to look up source", goerr.V("source", source))
	}
	return count > 0, nil
}

// ListRecords returns records of a source ordered by Seq
func (s *SQLite) ListRecords(ctx context.Context, source types.SourceID) ([]*model.TimelineRecord, error) {
	exists, err := s.sourceExists(ctx, source)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, goerr.Wrap(model.ErrSourceNotFound, "failed to list records", goerr.V("source", source))
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, fields, imported_at FROM timeline_items
		WHERE source = ?
		ORDER BY seq, id
	`, source.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query records", goerr.V("source", source))
	}
	defer rows.Close()

	records := []*model.TimelineRecord{}
	for rows.Next() {
		var (
			id, fields, importedAt string
			seq                    int
		)
		if err := rows.Scan(&id, &seq, &fields, &importedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan record")
		}

		r := &model.TimelineRecord{
			ID:     types.ItemID(id),
			Source: source,
			Seq:    seq,
		}
		if err := json.Unmarshal([]byte(fields), &r.Fields); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record fields", goerr.V("id", id))
		}
		if t, err := time.Parse(time.RFC3339Nano, importedAt); err == nil {
			r.ImportedAt = t
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate records")
	}

	return records, nil
}

// ListSources returns all sources sorted by ID
func (s *SQLite) ListSources(ctx context.Context) ([]types.SourceID, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM timeline_sources ORDER BY id")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query sources")
	}
	defer rows.Close()

	sources := []types.SourceID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, goerr.Wrap(err, "failed to scan source")
		}
		sources = append(sources, types.SourceID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate sources")
	}
	return sources, nil
}

// DeleteSource removes a source and its records
func (s *SQLite) DeleteSource(ctx context.Context, source types.SourceID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, "DELETE FROM timeline_sources WHERE id = ?", source.String())
	if err != nil {
		return goerr.Wrap(err, "failed to delete source", goerr.V("source", source))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(model.ErrSourceNotFound, "failed to delete source", goerr.V("source", source))
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM timeline_items WHERE source = ?", source.String()); err != nil {
		return goerr.Wrap(err, "failed to delete records", goerr.V("source", source))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit source deletion", goerr.V("source", source))
	}
	return nil
}

// Close closes the database
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

var _ interfaces.Repository = (*SQLite)(nil) // Compile-time interface check
