package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// TagScore is one row of a graph query result.
type TagScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RelatedTags returns the neighbors of a tag ordered by edge weight
// descending, name ascending on ties.
func (db *DB) RelatedTags(tagID string, limit int) ([]TagScore, error) {
	rows, err := db.Query(`
		SELECT t.name, e.weight
		FROM tag_edges e
		JOIN tags t ON t.id = CASE WHEN e.a = ?1 THEN e.b ELSE e.a END
		WHERE e.a = ?1 OR e.b = ?1
		ORDER BY e.weight DESC, t.name ASC
		LIMIT ?2
	`, tagID, limit)
	if err != nil {
		return nil, fmt.Errorf("related tags %s: %w", tagID, err)
	}
	defer rows.Close()
	return scanTagScores(rows)
}

// SuggestTags aggregates edges touching any seed tag by their other
// endpoint, summing weights across seeds and excluding the seeds
// themselves, ordered by aggregate score descending.
func (db *DB) SuggestTags(seedIDs []string, limit int) ([]TagScore, error) {
	if len(seedIDs) == 0 {
		return nil, nil
	}

	ph := placeholders(len(seedIDs))
	query := fmt.Sprintf(`
		SELECT t.name, SUM(e.weight) AS score
		FROM tag_edges e
		JOIN tags t ON t.id = CASE WHEN e.a IN (%s) THEN e.b ELSE e.a END
		WHERE (e.a IN (%s) OR e.b IN (%s)) AND t.id NOT IN (%s)
		GROUP BY t.id
		ORDER BY score DESC, t.name ASC
		LIMIT ?
	`, ph, ph, ph, ph)

	args := make([]any, 0, 4*len(seedIDs)+1)
	for i := 0; i < 4; i++ {
		for _, id := range seedIDs {
			args = append(args, id)
		}
	}
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("suggest tags: %w", err)
	}
	defer rows.Close()
	return scanTagScores(rows)
}

// TrendingTags returns tags whose last_seen falls at or after the given
// cutoff, ordered by freq descending then recency descending. The score
// column carries the frequency.
func (db *DB) TrendingTags(since int64, limit int) ([]TagScore, error) {
	rows, err := db.Query(`
		SELECT t.name, s.freq
		FROM tag_stats s
		JOIN tags t ON t.id = s.tag_id
		WHERE s.last_seen >= ?
		ORDER BY s.freq DESC, s.last_seen DESC
		LIMIT ?
	`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("trending tags: %w", err)
	}
	defer rows.Close()
	return scanTagScores(rows)
}

func scanTagScores(rows *sql.Rows) ([]TagScore, error) {
	var out []TagScore
	for rows.Next() {
		var ts TagScore
		if err := rows.Scan(&ts.Name, &ts.Score); err != nil {
			return nil, fmt.Errorf("scan tag score: %w", err)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

// placeholders builds a "?,?,?" list of the given length.
func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
