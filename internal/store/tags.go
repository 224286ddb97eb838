package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pierkiroule/tagweave/internal/tagger"
)

// ErrTagNotFound is returned by operations that require an existing
// tag (merge source, related-to lookups). Distinct from validation
// errors so callers can map it to a 404 instead of a 400.
var ErrTagNotFound = errors.New("tag not found")

// Tag is a canonical extracted keyword or key-phrase.
// Norm is unique across all tags; Name is a display surface form.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Norm string `json:"norm"`
}

// TagStats carries the per-tag extraction counters.
type TagStats struct {
	TagID    string
	Freq     int64
	LastSeen int64
}

// GetOrCreateTag looks a tag up by its normalized form, creating it if
// absent. A racing insert resolves on the norm uniqueness constraint:
// the display name follows the last writer, the identity (id, norm)
// stays stable.
func (db *DB) GetOrCreateTag(name string) (*Tag, error) {
	norm := tagger.Normalize(name)
	if norm == "" {
		return nil, fmt.Errorf("tag name %q normalizes to empty", name)
	}

	var t Tag
	err := db.QueryRow(`
		INSERT INTO tags (id, name, norm) VALUES (?, ?, ?)
		ON CONFLICT(norm) DO UPDATE SET name = excluded.name
		RETURNING id, name, norm
	`, uuid.New().String(), name, norm).Scan(&t.ID, &t.Name, &t.Norm)
	if err != nil {
		return nil, fmt.Errorf("get or create tag %q: %w", name, err)
	}
	return &t, nil
}

// GetTagByName resolves a tag by name through its normalized form.
// Returns nil if no tag exists for that form.
func (db *DB) GetTagByName(name string) (*Tag, error) {
	norm := tagger.Normalize(name)
	if norm == "" {
		return nil, nil
	}

	var t Tag
	err := db.QueryRow(`SELECT id, name, norm FROM tags WHERE norm = ?`, norm).
		Scan(&t.ID, &t.Name, &t.Norm)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by name %q: %w", name, err)
	}
	return &t, nil
}

// GetTagByID returns a tag by id, or nil if not found.
func (db *DB) GetTagByID(id string) (*Tag, error) {
	var t Tag
	err := db.QueryRow(`SELECT id, name, norm FROM tags WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Norm)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by id %s: %w", id, err)
	}
	return &t, nil
}

// GetTagStats returns the stats row for a tag, or nil if none exists.
func (db *DB) GetTagStats(tagID string) (*TagStats, error) {
	var s TagStats
	err := db.QueryRow(`SELECT tag_id, freq, last_seen FROM tag_stats WHERE tag_id = ?`, tagID).
		Scan(&s.TagID, &s.Freq, &s.LastSeen)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag stats %s: %w", tagID, err)
	}
	return &s, nil
}

// DocumentTags returns the tag ids linked to a document.
func (db *DB) DocumentTags(documentID string) ([]string, error) {
	rows, err := db.Query(`SELECT tag_id FROM document_tags WHERE document_id = ? ORDER BY tag_id`, documentID)
	if err != nil {
		return nil, fmt.Errorf("document tags %s: %w", documentID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan document tag: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountDocumentLinks returns the number of (document, tag) link rows
// for the given document and tag pair. Used to assert link uniqueness.
func (db *DB) CountDocumentLinks(documentID, tagID string) (int, error) {
	var n int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM document_tags WHERE document_id = ? AND tag_id = ?
	`, documentID, tagID).Scan(&n)
	return n, err
}

// getTagByNormTx is GetTagByName inside a transaction.
func getTagByNormTx(tx *sql.Tx, norm string) (*Tag, error) {
	var t Tag
	err := tx.QueryRow(`SELECT id, name, norm FROM tags WHERE norm = ?`, norm).
		Scan(&t.ID, &t.Name, &t.Norm)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by norm %q: %w", norm, err)
	}
	return &t, nil
}

// getOrCreateTagTx is GetOrCreateTag inside a transaction.
func getOrCreateTagTx(tx *sql.Tx, name string) (*Tag, error) {
	norm := tagger.Normalize(name)
	if norm == "" {
		return nil, fmt.Errorf("tag name %q normalizes to empty", name)
	}

	var t Tag
	err := tx.QueryRow(`
		INSERT INTO tags (id, name, norm) VALUES (?, ?, ?)
		ON CONFLICT(norm) DO UPDATE SET name = excluded.name
		RETURNING id, name, norm
	`, uuid.New().String(), name, norm).Scan(&t.ID, &t.Name, &t.Norm)
	if err != nil {
		return nil, fmt.Errorf("get or create tag %q: %w", name, err)
	}
	return &t, nil
}

// canonicalPair orders two tag ids so that a < b, the storage invariant
// for undirected edges.
func canonicalPair(x, y string) (string, string) {
	if x < y {
		return x, y
	}
	return y, x
}
