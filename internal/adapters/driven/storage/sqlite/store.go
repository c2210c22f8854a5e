package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/domain"
	"github.com/tagsmith-io/tagsmith-cli/internal/core/ports/driven"
)

// Ensure Journal implements the interface.
var _ driven.TaskJournal = (*Journal)(nil)

// Journal is a SQLite-backed implementation of driven.TaskJournal.
type Journal struct {
	db   *sql.DB
	path string
}

// NewJournal creates a SQLite journal at the specified data directory.
// If dataDir is empty, defaults to ~/.tagsmith/data/journal.db.
func NewJournal(dataDir string) (*Journal, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tagsmith", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	j := &Journal{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := j.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return j, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Record appends one task outcome.
func (j *Journal) Record(ctx context.Context, rec domain.TaskRecord) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO task_records (task_id, node_ref, requested, outcome, error, processed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, rec.TaskID, string(rec.NodeRef), rec.Requested, string(rec.Outcome),
		nullString(rec.Error), rec.ProcessedAt.UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("recording task outcome: %w", err)
	}
	return nil
}

// Recent returns the most recently processed records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.TaskRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT task_id, node_ref, requested, outcome, error, processed_at
		FROM task_records
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying task records: %w", err)
	}
	defer rows.Close()

	var records []domain.TaskRecord
	for rows.Next() {
		var rec domain.TaskRecord
		var nodeRef, outcome, processedAt string
		var errText sql.NullString

		if err := rows.Scan(&rec.TaskID, &nodeRef, &rec.Requested, &outcome, &errText, &processedAt); err != nil {
			return nil, fmt.Errorf("scanning task record: %w", err)
		}
		rec.NodeRef = domain.NodeRef(nodeRef)
		rec.Outcome = domain.TaskOutcome(outcome)
		rec.Error = errText.String
		if ts, err := time.Parse(time.RFC3339Nano, processedAt); err == nil {
			rec.ProcessedAt = ts
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task records: %w", err)
	}
	return records, nil
}

// migrate runs all pending migrations.
func (j *Journal) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := j.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := j.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := j.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
