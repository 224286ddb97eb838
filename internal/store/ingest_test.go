package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestTags(t *testing.T) {
	db := testDB(t)

	tags, err := db.IngestTags("doc-1", []string{"ocean", "vague", "lune"})
	require.NoError(t, err)
	require.Len(t, tags, 3)

	ids, err := db.DocumentTags("doc-1")
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	for _, tag := range tags {
		stats, err := db.GetTagStats(tag.ID)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(1), stats.Freq)
		assert.Positive(t, stats.LastSeen)
	}

	// Three tags co-occurring yields all three unordered pairs at weight 1.
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			w, err := db.EdgeWeight(tags[i].ID, tags[j].ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), w)
		}
	}
}

func TestIngestTagsEmpty(t *testing.T) {
	db := testDB(t)

	tags, err := db.IngestTags("doc-1", nil)
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = db.IngestTags("", []string{"ocean"})
	assert.Error(t, err)
}

func TestIngestTagsCollapsesDuplicateNorms(t *testing.T) {
	db := testDB(t)

	// "Vagues" and "vague" normalize to the same tag; the pair must not
	// produce a self-edge or a double link.
	tags, err := db.IngestTags("doc-1", []string{"Vagues", "vague", "ocean"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	n, err := db.CountDocumentLinks("doc-1", tags[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	w, err := db.EdgeWeight(tags[0].ID, tags[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)
}

func TestIngestTagsReingestCountsAgain(t *testing.T) {
	db := testDB(t)

	tags, err := db.IngestTags("doc-1", []string{"ocean", "vague"})
	require.NoError(t, err)
	_, err = db.IngestTags("doc-1", []string{"ocean", "vague"})
	require.NoError(t, err)

	// Links stay unique, counters accumulate per call.
	for _, tag := range tags {
		n, err := db.CountDocumentLinks("doc-1", tag.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		stats, err := db.GetTagStats(tag.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stats.Freq)
	}

	w, err := db.EdgeWeight(tags[0].ID, tags[1].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
}

func TestIngestTagsEdgeWeightAccumulatesAcrossDocuments(t *testing.T) {
	db := testDB(t)

	const docs = 5
	for i := 0; i < docs; i++ {
		_, err := db.IngestTags(fmt.Sprintf("doc-%d", i), []string{"mer", "vent"})
		require.NoError(t, err)
	}

	mer, err := db.GetTagByName("mer")
	require.NoError(t, err)
	vent, err := db.GetTagByName("vent")
	require.NoError(t, err)

	w, err := db.EdgeWeight(mer.ID, vent.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(docs), w)
}

func TestEdgeWeightMissing(t *testing.T) {
	db := testDB(t)

	w, err := db.EdgeWeight("x", "y")
	require.NoError(t, err)
	assert.Zero(t, w)
}
