// Package sqlite provides a SQLite-backed ontology adapter.
//
// Two adapter-string forms are handled:
//
//	sqlite:/path/to/ontology.db    open a database at an explicit path
//	sqlite:obo:go                  open <obo-dir>/go.db
//
// The OBO directory defaults to ~/.cache/semterms/obo and can be overridden
// with the SEMTERMS_OBO_DIR environment variable. Databases use a minimal
// two-table layout (terms, edges) and are built with the semterms CLI or
// any tool writing the same schema.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/c360studio/semterms/ontology"
)

// oboDirEnv overrides the default OBO database directory.
const oboDirEnv = "SEMTERMS_OBO_DIR"

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to run against existing databases.
const schema = `
CREATE TABLE IF NOT EXISTS terms (
    curie TEXT PRIMARY KEY,
    label TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS edges (
    subject   TEXT NOT NULL,
    predicate TEXT NOT NULL,
    object    TEXT NOT NULL,
    PRIMARY KEY (subject, predicate, object)
);

CREATE INDEX IF NOT EXISTS idx_edges_object ON edges(object, predicate);
`

func init() {
	ontology.Register("sqlite", func(ctx context.Context, adapterString string) (ontology.Adapter, error) {
		return OpenAdapterString(ctx, adapterString)
	})
}

// Adapter is a SQLite-backed ontology backend.
type Adapter struct {
	db *sql.DB
}

var _ ontology.Adapter = (*Adapter)(nil)

// OpenAdapterString opens an adapter from a full adapter string
// ("sqlite:..." or "sqlite:obo:...").
func OpenAdapterString(ctx context.Context, adapterString string) (*Adapter, error) {
	rest, ok := strings.CutPrefix(adapterString, "sqlite:")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ontology.ErrInvalidAdapterString, adapterString)
	}

	if name, isOBO := strings.CutPrefix(rest, "obo:"); isOBO {
		if name == "" {
			return nil, fmt.Errorf("%w: %q has no ontology name", ontology.ErrInvalidAdapterString, adapterString)
		}
		path := filepath.Join(oboDir(), name+".db")
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("obo database %q: %w", name, err)
		}
		return Open(ctx, path)
	}

	return Open(ctx, rest)
}

// Open opens (or creates) an ontology database at dbPath and creates the
// schema tables if they do not exist.
func Open(ctx context.Context, dbPath string) (*Adapter, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("ontology: open database: %w", err)
	}

	// SQLite only supports a single writer; one connection avoids
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ontology: set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ontology: create schema: %w", err)
	}

	return &Adapter{db: db}, nil
}

// Close closes the underlying database.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// AddTerm upserts a term and its label.
func (a *Adapter) AddTerm(ctx context.Context, curie, label string) error {
	const q = `
		INSERT INTO terms (curie, label) VALUES (?, ?)
		ON CONFLICT(curie) DO UPDATE SET label = excluded.label`
	if _, err := a.db.ExecContext(ctx, q, curie, label); err != nil {
		return fmt.Errorf("ontology: add term %q: %w", curie, err)
	}
	return nil
}

// AddEdge upserts a relationship assertion. For classification edges the
// subject is the child and the object the parent.
func (a *Adapter) AddEdge(ctx context.Context, subject, predicate, object string) error {
	const q = `INSERT OR IGNORE INTO edges (subject, predicate, object) VALUES (?, ?, ?)`
	if _, err := a.db.ExecContext(ctx, q, subject, predicate, object); err != nil {
		return fmt.Errorf("ontology: add edge %q -%q-> %q: %w", subject, predicate, object, err)
	}
	return nil
}

// Label returns the label for a term, with found=false for unknown terms.
func (a *Adapter) Label(ctx context.Context, curie string) (string, bool, error) {
	const q = `SELECT label FROM terms WHERE curie = ?`
	var label string
	err := a.db.QueryRowContext(ctx, q, curie).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ontology: label %q: %w", curie, err)
	}
	return label, true, nil
}

// Ancestors returns terms reachable from curie walking edges subject to
// object over the given predicates.
func (a *Adapter) Ancestors(ctx context.Context, curie string, predicates []string, reflexive bool) ([]string, error) {
	return a.walk(ctx, curie, predicates, reflexive, true)
}

// Descendants returns terms reachable from curie walking edges object to
// subject over the given predicates.
func (a *Adapter) Descendants(ctx context.Context, curie string, predicates []string, reflexive bool) ([]string, error) {
	return a.walk(ctx, curie, predicates, reflexive, false)
}

// walk runs a recursive transitive-closure query over the edges table.
func (a *Adapter) walk(ctx context.Context, start string, predicates []string, reflexive, up bool) ([]string, error) {
	if len(predicates) == 0 {
		return nil, nil
	}

	from, to := "subject", "object"
	if !up {
		from, to = "object", "subject"
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(predicates)), ",")
	q := fmt.Sprintf(`
		WITH RECURSIVE walk(curie) AS (
			SELECT ?
			UNION
			SELECT e.%s FROM edges e
			JOIN walk w ON e.%s = w.curie
			WHERE e.predicate IN (%s)
		)
		SELECT curie FROM walk`, to, from, placeholders)

	args := make([]any, 0, len(predicates)+1)
	args = append(args, start)
	for _, p := range predicates {
		args = append(args, p)
	}

	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ontology: walk from %q: %w", start, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("ontology: walk from %q: %w", start, err)
		}
		if c == start && !reflexive {
			continue
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ontology: walk from %q: %w", start, err)
	}

	sort.Strings(out)
	return out, nil
}

func oboDir() string {
	if dir := os.Getenv(oboDirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "obo"
	}
	return filepath.Join(home, ".cache", "semterms", "obo")
}
