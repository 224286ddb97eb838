package store

import (
	"fmt"

	"github.com/pierkiroule/tagweave/internal/tagger"
)

// MergeTags collapses the tag resolved by fromName into the tag
// resolved by toName and returns the survivor. The source must exist
// (ErrTagNotFound otherwise); the target is created on demand; merging
// a tag into itself is a no-op success.
//
// The surgery runs as one transaction:
//
//  1. document links are repointed to the target, de-duplicating any
//     (document, target) collision;
//  2. stats are combined (freq summed, last_seen maxed);
//  3. edges touching the source are redirected to the target, summing
//     weights on collision and dropping would-be self-loops;
//  4. the source's remaining edges, stats row, and tag row are deleted.
//
// Any failure rolls the whole thing back, leaving the graph untouched.
// Two concurrent merges of the same source serialize on the store's
// write lock; the loser observes ErrTagNotFound.
func (db *DB) MergeTags(fromName, toName string) (*Tag, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("merge: begin: %w", err)
	}
	defer tx.Rollback()

	from, err := getTagByNormTx(tx, tagger.Normalize(fromName))
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	if from == nil {
		return nil, fmt.Errorf("merge: source %q: %w", fromName, ErrTagNotFound)
	}

	to, err := getOrCreateTagTx(tx, toName)
	if err != nil {
		return nil, fmt.Errorf("merge: target %q: %w", toName, err)
	}

	if from.ID == to.ID {
		// Same canonical tag; nothing to move. Commit so the target
		// name update from get-or-create sticks.
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("merge: commit no-op: %w", err)
		}
		return to, nil
	}

	// 1. Repoint document links; a document holding both tags keeps
	// exactly one link to the target.
	if _, err := tx.Exec(`
		UPDATE OR IGNORE document_tags SET tag_id = ? WHERE tag_id = ?
	`, to.ID, from.ID); err != nil {
		return nil, fmt.Errorf("merge: repoint links: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM document_tags WHERE tag_id = ?`, from.ID); err != nil {
		return nil, fmt.Errorf("merge: drop duplicate links: %w", err)
	}

	// 2. Combine stats: freq sums, last_seen takes the max.
	if _, err := tx.Exec(`
		INSERT INTO tag_stats (tag_id, freq, last_seen)
		SELECT ?, freq, last_seen FROM tag_stats WHERE tag_id = ?
		ON CONFLICT(tag_id) DO UPDATE SET
			freq = tag_stats.freq + excluded.freq,
			last_seen = MAX(tag_stats.last_seen, excluded.last_seen)
	`, to.ID, from.ID); err != nil {
		return nil, fmt.Errorf("merge: combine stats: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tag_stats WHERE tag_id = ?`, from.ID); err != nil {
		return nil, fmt.Errorf("merge: drop source stats: %w", err)
	}

	// 3. Redirect edges. Collect first: the result set must be closed
	// before the writes below run on the same connection.
	type edge struct {
		a, b   string
		weight int64
	}
	rows, err := tx.Query(`SELECT a, b, weight FROM tag_edges WHERE a = ?1 OR b = ?1`, from.ID)
	if err != nil {
		return nil, fmt.Errorf("merge: load source edges: %w", err)
	}
	var edges []edge
	for rows.Next() {
		var e edge
		if err := rows.Scan(&e.a, &e.b, &e.weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("merge: scan edge: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("merge: iterate edges: %w", err)
	}
	rows.Close()

	for _, e := range edges {
		other := e.a
		if e.a == from.ID {
			other = e.b
		}
		if other == to.ID {
			// Edge between source and target collapses; never a self-loop.
			continue
		}
		a, b := canonicalPair(to.ID, other)
		if _, err := tx.Exec(`
			INSERT INTO tag_edges (a, b, weight) VALUES (?, ?, ?)
			ON CONFLICT(a, b) DO UPDATE SET weight = weight + excluded.weight
		`, a, b, e.weight); err != nil {
			return nil, fmt.Errorf("merge: redirect edge: %w", err)
		}
	}

	// 4. Delete everything that still references the source.
	if _, err := tx.Exec(`DELETE FROM tag_edges WHERE a = ?1 OR b = ?1`, from.ID); err != nil {
		return nil, fmt.Errorf("merge: drop source edges: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM tags WHERE id = ?`, from.ID); err != nil {
		return nil, fmt.Errorf("merge: drop source tag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("merge: commit: %w", err)
	}
	return to, nil
}
