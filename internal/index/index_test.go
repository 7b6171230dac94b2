// Copyright Kevin Haller, 2026. All rights reserved.

package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/output"
)

// testIndex builds an index over in-memory buffers and returns the index
// together with the raw index and relevant-entities output.
func testIndex(t *testing.T) (*Index, *strings.Builder, *strings.Builder) {
	t.Helper()
	var indexBuf, relevantBuf strings.Builder
	ix := New(output.NewTSVWriter(&indexBuf), output.NewTSVWriter(&relevantBuf))
	return ix, &indexBuf, &relevantBuf
}

func TestResolveAssignsDenseSequentialIDs(t *testing.T) {
	ix, indexBuf, _ := testIndex(t)

	uris := []string{
		"http://dbpedia.org/resource/Vienna",
		"http://dbpedia.org/ontology/country",
		"http://dbpedia.org/resource/Austria",
	}
	for want, uri := range uris {
		id, err := ix.Resolve(uri, true)
		require.NoError(t, err)
		assert.Equal(t, int64(want), id)
	}
	assert.Equal(t, int64(3), ix.Count())

	assert.Equal(t,
		"0\thttp://dbpedia.org/resource/Vienna\n"+
			"1\thttp://dbpedia.org/ontology/country\n"+
			"2\thttp://dbpedia.org/resource/Austria\n",
		indexBuf.String())
}

func TestResolveIsStableAcrossRepeatedCalls(t *testing.T) {
	ix, indexBuf, _ := testIndex(t)

	first, err := ix.Resolve("http://dbpedia.org/resource/Vienna", true)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := ix.Resolve("http://dbpedia.org/resource/Vienna", false)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// Repeated calls must not append further rows.
	assert.Equal(t, "0\thttp://dbpedia.org/resource/Vienna\n", indexBuf.String())
}

func TestRelevanceIsFixedAtFirstSight(t *testing.T) {
	ix, _, relevantBuf := testIndex(t)

	// First seen as a predicate (not relevant), later as a subject.
	_, err := ix.Resolve("http://dbpedia.org/ontology/country", false)
	require.NoError(t, err)
	_, err = ix.Resolve("http://dbpedia.org/ontology/country", true)
	require.NoError(t, err)

	assert.Empty(t, relevantBuf.String())

	// And the reverse: relevant at first sight stays recorded.
	_, err = ix.Resolve("http://dbpedia.org/resource/Austria", true)
	require.NoError(t, err)
	_, err = ix.Resolve("http://dbpedia.org/resource/Austria", false)
	require.NoError(t, err)

	assert.Equal(t, "1\n", relevantBuf.String())
}

func TestLookupDistinguishesUnseenFromError(t *testing.T) {
	ix, _, _ := testIndex(t)

	_, err := ix.Lookup("http://dbpedia.org/resource/Vienna")
	assert.ErrorIs(t, err, ErrNotIndexed)

	id, err := ix.Resolve("http://dbpedia.org/resource/Vienna", true)
	require.NoError(t, err)

	got, err := ix.Lookup("http://dbpedia.org/resource/Vienna")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestIdempotentReplayReproducesAssignments(t *testing.T) {
	uris := []string{
		"http://dbpedia.org/resource/Vienna",
		"http://dbpedia.org/ontology/country",
		"http://dbpedia.org/resource/Austria",
		"http://dbpedia.org/resource/Vienna",
		"http://dbpedia.org/resource/Graz",
	}

	run := func() map[string]int64 {
		ix, _, _ := testIndex(t)
		got := make(map[string]int64)
		for _, uri := range uris {
			id, err := ix.Resolve(uri, true)
			require.NoError(t, err)
			got[uri] = id
		}
		return got
	}

	assert.Equal(t, run(), run())
}

func TestLabelStoreWritesAtMostOnce(t *testing.T) {
	var buf strings.Builder
	store := NewLabelStore(output.NewTSVWriter(&buf))

	assert.False(t, store.Has(0))
	require.NoError(t, store.Write(0, LabelRecord{
		Label:       "Vienna",
		Description: "Capital of Austria",
		Depiction:   "http://commons.wikimedia.org/wiki/Special:FilePath/Wien.jpg",
	}))
	assert.True(t, store.Has(0))

	// Second write with different content is a silent no-op.
	require.NoError(t, store.Write(0, LabelRecord{Label: "Wien"}))

	assert.Equal(t,
		"0\tVienna\tCapital of Austria\thttp://commons.wikimedia.org/wiki/Special:FilePath/Wien.jpg\n",
		buf.String())
	assert.Equal(t, int64(1), store.Written())
}

func TestLabelStoreMarkAbsentSuppressesWithoutRecord(t *testing.T) {
	var buf strings.Builder
	store := NewLabelStore(output.NewTSVWriter(&buf))

	store.MarkAbsent(7)
	assert.True(t, store.Has(7))

	// A later write for a marked-absent id must not produce a row either.
	require.NoError(t, store.Write(7, LabelRecord{Label: "late"}))
	assert.Empty(t, buf.String())
	assert.Zero(t, store.Written())
}
