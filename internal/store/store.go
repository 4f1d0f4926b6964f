// Package store handles the SQLite dictionary sink.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/verte-zerg/lexiglyph/internal/model"
	"github.com/verte-zerg/lexiglyph/internal/pipeline"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for the dictionary artifact.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies the schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tiers (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY,
			word TEXT NOT NULL,
			score REAL NOT NULL,
			tier TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_tier ON words(tier);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// WriteDictionary replaces the stored dictionary with the provided one in a
// single transaction. Prior content is dropped so the artifact always mirrors
// the latest run.
func (s *Store) WriteDictionary(ctx context.Context, dict pipeline.Dictionary) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range []string{`DELETE FROM words`, `DELETE FROM tiers`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	tierStmt, err := tx.PrepareContext(ctx, `INSERT INTO tiers (position, name) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := tierStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()
	wordStmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, score, tier) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wordStmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for position, name := range dict.Order {
		if _, err = tierStmt.ExecContext(ctx, position, name); err != nil {
			return err
		}
		for _, entry := range dict.Buckets[name] {
			if _, err = wordStmt.ExecContext(ctx, entry.Word, entry.Score, name); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// ReadDictionary loads the stored dictionary, tiers in stored order and
// entries in insertion order within each tier.
func (s *Store) ReadDictionary(ctx context.Context) (pipeline.Dictionary, error) {
	dict := pipeline.Dictionary{Buckets: map[string][]model.Entry{}}

	tierRows, err := s.db.QueryContext(ctx, `SELECT name FROM tiers ORDER BY position ASC`)
	if err != nil {
		return pipeline.Dictionary{}, err
	}
	defer func() {
		if cerr := tierRows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for tierRows.Next() {
		var name string
		if err := tierRows.Scan(&name); err != nil {
			return pipeline.Dictionary{}, err
		}
		dict.Order = append(dict.Order, name)
		dict.Buckets[name] = []model.Entry{}
	}
	if err := tierRows.Err(); err != nil {
		return pipeline.Dictionary{}, err
	}

	wordRows, err := s.db.QueryContext(ctx, `SELECT word, score, tier FROM words ORDER BY id ASC`)
	if err != nil {
		return pipeline.Dictionary{}, err
	}
	defer func() {
		if cerr := wordRows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for wordRows.Next() {
		var entry model.Entry
		var tier string
		if err := wordRows.Scan(&entry.Word, &entry.Score, &tier); err != nil {
			return pipeline.Dictionary{}, err
		}
		dict.Buckets[tier] = append(dict.Buckets[tier], entry)
	}
	if err := wordRows.Err(); err != nil {
		return pipeline.Dictionary{}, err
	}
	return dict, nil
}
