package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedGraph ingests a small fixed corpus:
//
//	doc-1: ocean vague lune
//	doc-2: ocean vague
//	doc-3: ocean soleil
func seedGraph(t *testing.T, db *DB) map[string]string {
	t.Helper()
	for doc, names := range map[string][]string{
		"doc-1": {"ocean", "vague", "lune"},
		"doc-2": {"ocean", "vague"},
		"doc-3": {"ocean", "soleil"},
	} {
		_, err := db.IngestTags(doc, names)
		require.NoError(t, err)
	}

	ids := make(map[string]string)
	for _, name := range []string{"ocean", "vague", "lune", "soleil"} {
		tag, err := db.GetTagByName(name)
		require.NoError(t, err)
		require.NotNil(t, tag)
		ids[name] = tag.ID
	}
	return ids
}

func TestRelatedTags(t *testing.T) {
	db := testDB(t)
	ids := seedGraph(t, db)

	related, err := db.RelatedTags(ids["ocean"], 10)
	require.NoError(t, err)

	// vague co-occurred twice with ocean; lune and soleil once each and
	// tie-break alphabetically.
	require.Len(t, related, 3)
	assert.Equal(t, "vague", related[0].Name)
	assert.Equal(t, float64(2), related[0].Score)
	assert.Equal(t, "lune", related[1].Name)
	assert.Equal(t, "soleil", related[2].Name)
}

func TestRelatedTagsLimit(t *testing.T) {
	db := testDB(t)
	ids := seedGraph(t, db)

	related, err := db.RelatedTags(ids["ocean"], 1)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "vague", related[0].Name)
}

func TestRelatedTagsIsolated(t *testing.T) {
	db := testDB(t)

	tag, err := db.GetOrCreateTag("solitaire")
	require.NoError(t, err)

	related, err := db.RelatedTags(tag.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestSuggestTags(t *testing.T) {
	db := testDB(t)
	ids := seedGraph(t, db)

	suggested, err := db.SuggestTags([]string{ids["ocean"], ids["lune"]}, 10)
	require.NoError(t, err)

	// vague sums its ocean edge (2) and its lune edge (1); seeds never
	// appear in their own suggestions.
	require.Len(t, suggested, 2)
	assert.Equal(t, "vague", suggested[0].Name)
	assert.Equal(t, float64(3), suggested[0].Score)
	assert.Equal(t, "soleil", suggested[1].Name)
	assert.Equal(t, float64(1), suggested[1].Score)
}

func TestSuggestTagsNoSeeds(t *testing.T) {
	db := testDB(t)

	suggested, err := db.SuggestTags(nil, 10)
	require.NoError(t, err)
	assert.Empty(t, suggested)
}

func TestTrendingTags(t *testing.T) {
	db := testDB(t)
	seedGraph(t, db)

	trending, err := db.TrendingTags(0, 10)
	require.NoError(t, err)
	require.Len(t, trending, 4)
	assert.Equal(t, "ocean", trending[0].Name)
	assert.Equal(t, float64(3), trending[0].Score)
	assert.Equal(t, "vague", trending[1].Name)
}

func TestTrendingTagsWindow(t *testing.T) {
	db := testDB(t)
	seedGraph(t, db)

	future := time.Now().Add(time.Hour).UnixMilli()
	trending, err := db.TrendingTags(future, 10)
	require.NoError(t, err)
	assert.Empty(t, trending)
}

func TestTrendingTagsLimit(t *testing.T) {
	db := testDB(t)
	seedGraph(t, db)

	trending, err := db.TrendingTags(0, 2)
	require.NoError(t, err)
	require.Len(t, trending, 2)
	assert.Equal(t, "ocean", trending[0].Name)
}
