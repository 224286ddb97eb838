package store

import (
	"database/sql"
	"fmt"
	"time"
)

// IngestTags links the given tag names to a document and records their
// graph effects in one transaction: get-or-create each tag, an
// idempotent document link, a freq/last_seen stat bump, and a +1 on
// every unordered pair edge. Either everything for the document
// commits, or nothing does; a failed call can be retried safely.
//
// Names that normalize identically collapse to one tag. Re-ingesting a
// document keeps links unique but counts stats and edge weights again —
// each call is an occurrence event, de-duplication is the caller's
// concern.
func (db *DB) IngestTags(documentID string, names []string) ([]Tag, error) {
	if documentID == "" {
		return nil, fmt.Errorf("ingest: empty document id")
	}
	if len(names) == 0 {
		return nil, nil
	}

	now := time.Now().UnixMilli()

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("ingest %s: begin: %w", documentID, err)
	}
	defer tx.Rollback()

	seen := make(map[string]bool, len(names))
	tags := make([]Tag, 0, len(names))

	for _, name := range names {
		t, err := getOrCreateTagTx(tx, name)
		if err != nil {
			return nil, fmt.Errorf("ingest %s: %w", documentID, err)
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		tags = append(tags, *t)

		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO document_tags (document_id, tag_id) VALUES (?, ?)
		`, documentID, t.ID); err != nil {
			return nil, fmt.Errorf("ingest %s: link %s: %w", documentID, t.Norm, err)
		}

		if _, err := tx.Exec(`
			INSERT INTO tag_stats (tag_id, freq, last_seen) VALUES (?, 1, ?)
			ON CONFLICT(tag_id) DO UPDATE SET
				freq = freq + 1,
				last_seen = MAX(last_seen, excluded.last_seen)
		`, t.ID, now); err != nil {
			return nil, fmt.Errorf("ingest %s: stats %s: %w", documentID, t.Norm, err)
		}
	}

	// Every unordered pair among this document's tags co-occurred once.
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			a, b := canonicalPair(tags[i].ID, tags[j].ID)
			if _, err := tx.Exec(`
				INSERT INTO tag_edges (a, b, weight) VALUES (?, ?, 1)
				ON CONFLICT(a, b) DO UPDATE SET weight = weight + 1
			`, a, b); err != nil {
				return nil, fmt.Errorf("ingest %s: edge %s/%s: %w", documentID, tags[i].Norm, tags[j].Norm, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("ingest %s: commit: %w", documentID, err)
	}
	return tags, nil
}

// EdgeWeight returns the accumulated co-occurrence weight between two
// tag ids, 0 if no edge exists.
func (db *DB) EdgeWeight(x, y string) (int64, error) {
	a, b := canonicalPair(x, y)
	var w int64
	err := db.QueryRow(`SELECT weight FROM tag_edges WHERE a = ? AND b = ?`, a, b).Scan(&w)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return w, nil
}
