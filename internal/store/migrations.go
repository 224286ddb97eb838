package store

import (
	"fmt"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "tags: canonical tag table, unique on normalized form",
		SQL: `
CREATE TABLE tags (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    norm TEXT NOT NULL UNIQUE
);
`,
	},
	{
		Version:     2,
		Description: "document_tags: document to tag links",
		SQL: `
CREATE TABLE document_tags (
    document_id TEXT NOT NULL,
    tag_id      TEXT NOT NULL REFERENCES tags(id),
    PRIMARY KEY (document_id, tag_id)
);

CREATE INDEX idx_document_tags_tag ON document_tags(tag_id);
`,
	},
	{
		Version:     3,
		Description: "tag_stats: extraction frequency and recency per tag",
		SQL: `
CREATE TABLE tag_stats (
    tag_id    TEXT PRIMARY KEY REFERENCES tags(id),
    freq      INTEGER NOT NULL DEFAULT 0,
    last_seen INTEGER NOT NULL
);

CREATE INDEX idx_tag_stats_last_seen ON tag_stats(last_seen DESC);
`,
	},
	{
		Version:     4,
		Description: "tag_edges: weighted undirected co-occurrence graph, canonical a < b",
		SQL: `
CREATE TABLE tag_edges (
    a      TEXT NOT NULL REFERENCES tags(id),
    b      TEXT NOT NULL REFERENCES tags(id),
    weight INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (a, b),
    CHECK (a < b)
);

CREATE INDEX idx_tag_edges_b ON tag_edges(b);
`,
	},
}

func (db *DB) migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_versions (
			version     INTEGER PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at  INTEGER NOT NULL DEFAULT (strftime('%s', 'now') * 1000)
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_versions: %w", err)
	}

	for _, m := range migrations {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_versions WHERE version = ?", m.Version).Scan(&count)
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.Version, err)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(
			"INSERT INTO schema_versions (version, description) VALUES (?, ?)",
			m.Version, m.Description,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the current schema version.
func (db *DB) SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_versions").Scan(&version)
	return version, err
}
