// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a SQLite summary index of rendered documents so that
// reporting scripts can aggregate counts across runs without re-reading
// every document.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/elementary-assertions/pkg/types"
)

// DefaultDBPath is used when the config names no database file.
const DefaultDBPath = "index/assertions.db"

// Store manages the summary index database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens or creates the index database named by cfg and creates
// the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database file.
func (s *Store) Dir() string {
	return filepath.Dir(s.dbPath)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			documents INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			digest TEXT PRIMARY KEY,
			doc_id TEXT,
			path TEXT NOT NULL,
			schema_version TEXT,
			tokens INTEGER,
			segments INTEGER,
			mentions INTEGER,
			assertions INTEGER,
			primary_mentions INTEGER,
			covered_mentions INTEGER,
			uncovered_mentions INTEGER,
			strictly_uncovered INTEGER,
			contained_uncovered INTEGER,
			unresolved INTEGER,
			suppressed INTEGER,
			warnings INTEGER,
			wiki_matches INTEGER,
			run_id TEXT NOT NULL REFERENCES runs(id),
			indexed_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_path ON documents(path)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_doc_id ON documents(doc_id)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_run_id ON documents(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one index run.
type IngestSummary struct {
	RunID   string
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of documents processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest stores document summaries under a new run id. A summary whose
// digest is already indexed is skipped; a path indexed earlier with a
// different digest is replaced. Progress lines go to w.
func (s *Store) Ingest(ctx context.Context, w io.Writer, summaries []types.DocumentSummary) (IngestSummary, error) {
	summary := IngestSummary{RunID: uuid.NewString()}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at) VALUES (?, ?)`, summary.RunID, now,
	); err != nil {
		return summary, fmt.Errorf("recording run: %w", err)
	}

	for _, doc := range summaries {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		var exists int
		if err := s.db.QueryRowContext(ctx,
			`SELECT count(*) FROM documents WHERE digest = ?`, doc.Digest,
		).Scan(&exists); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", doc.Path, err)
			summary.Failed++
			continue
		}
		if exists > 0 {
			fmt.Fprintf(w, "skipped %s\n", doc.Path)
			summary.Skipped++
			continue
		}

		doc.RunID = summary.RunID
		doc.IndexedAt = now
		replaced, err := s.storeDocument(ctx, doc)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", doc.Path, err)
			summary.Failed++
			continue
		}
		if replaced {
			fmt.Fprintf(w, "updated %s (%d assertions)\n", doc.Path, doc.Assertions)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexing %s (%d assertions)\n", doc.Path, doc.Assertions)
			summary.Indexed++
		}
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE runs SET documents = ? WHERE id = ?`, summary.Indexed+summary.Updated, summary.RunID,
	); err != nil {
		return summary, fmt.Errorf("updating run: %w", err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Store) storeDocument(ctx context.Context, doc types.DocumentSummary) (replaced bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE path = ?`, doc.Path)
	if err != nil {
		return false, fmt.Errorf("deleting old summary: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		replaced = true
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (digest, doc_id, path, schema_version,
			tokens, segments, mentions, assertions,
			primary_mentions, covered_mentions, uncovered_mentions,
			strictly_uncovered, contained_uncovered,
			unresolved, suppressed, warnings, wiki_matches,
			run_id, indexed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.Digest, doc.DocID, doc.Path, doc.SchemaVersion,
		doc.Tokens, doc.Segments, doc.Mentions, doc.Assertions,
		doc.PrimaryMentions, doc.CoveredMentions, doc.UncoveredMentions,
		doc.StrictlyUncovered, doc.ContainedUncovered,
		doc.Unresolved, doc.Suppressed, doc.Warnings, doc.WikiMatches,
		doc.RunID, doc.IndexedAt,
	)
	if err != nil {
		return false, fmt.Errorf("inserting summary: %w", err)
	}
	return replaced, tx.Commit()
}

// QueryOptions filters List results.
type QueryOptions struct {
	DocID string
	RunID string
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// List returns stored summaries ordered by path.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]types.DocumentSummary, error) {
	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT digest, COALESCE(doc_id, ''), path, COALESCE(schema_version, ''),
			tokens, segments, mentions, assertions,
			primary_mentions, covered_mentions, uncovered_mentions,
			strictly_uncovered, contained_uncovered,
			unresolved, suppressed, warnings, wiki_matches,
			run_id, indexed_at
		FROM documents WHERE 1=1`)
	if opts.DocID != "" {
		qb.WriteString(` AND doc_id = ?`)
		args = append(args, opts.DocID)
	}
	if opts.RunID != "" {
		qb.WriteString(` AND run_id = ?`)
		args = append(args, opts.RunID)
	}
	qb.WriteString(` ORDER BY path, digest`)
	if opts.Limit > 0 {
		qb.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var out []types.DocumentSummary
	for rows.Next() {
		var d types.DocumentSummary
		if err := rows.Scan(
			&d.Digest, &d.DocID, &d.Path, &d.SchemaVersion,
			&d.Tokens, &d.Segments, &d.Mentions, &d.Assertions,
			&d.PrimaryMentions, &d.CoveredMentions, &d.UncoveredMentions,
			&d.StrictlyUncovered, &d.ContainedUncovered,
			&d.Unresolved, &d.Suppressed, &d.Warnings, &d.WikiMatches,
			&d.RunID, &d.IndexedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
