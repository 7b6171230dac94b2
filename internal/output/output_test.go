// Copyright Kevin Haller, 2026. All rights reserved.

package output

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeIRI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "plain uri",
			uri:  "http://dbpedia.org/resource/Vienna",
			want: "<http://dbpedia.org/resource/Vienna>",
		},
		{
			name: "space escaped",
			uri:  "http://dbpedia.org/resource/New York",
			want: "<http://dbpedia.org/resource/New\\u0020York>",
		},
		{
			name: "angle brackets and quote escaped",
			uri:  `http://example.org/a<b>"c`,
			want: `<http://example.org/a\u003Cb\u003E\u0022c>`,
		},
		{
			name: "unicode passes through",
			uri:  "http://dbpedia.org/resource/Wien_Österreich",
			want: "<http://dbpedia.org/resource/Wien_Österreich>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeIRI(tt.uri))
		})
	}
}

func TestTripleWriter(t *testing.T) {
	var b strings.Builder
	tw := NewTripleWriter(&b)

	require.NoError(t, tw.WriteTriple(
		"http://dbpedia.org/resource/Vienna",
		"http://dbpedia.org/ontology/country",
		"http://dbpedia.org/resource/Austria",
	))

	assert.Equal(t,
		"<http://dbpedia.org/resource/Vienna> <http://dbpedia.org/ontology/country> <http://dbpedia.org/resource/Austria> .\n",
		b.String())
}

func TestTSVWriterWritesThrough(t *testing.T) {
	var buf strings.Builder
	w := NewTSVWriter(&buf)

	// Each row must reach the underlying stream as soon as it is written,
	// not only when the stream group is closed.
	require.NoError(t, w.WriteRow("0", "http://dbpedia.org/resource/Vienna"))
	assert.Equal(t, "0\thttp://dbpedia.org/resource/Vienna\n", buf.String())

	require.NoError(t, w.WriteRow("1", "http://dbpedia.org/resource/Austria"))
	assert.Equal(t,
		"0\thttp://dbpedia.org/resource/Vienna\n1\thttp://dbpedia.org/resource/Austria\n",
		buf.String())
}

// failingWriter fails every write, standing in for a full disk.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTSVWriterSurfacesErrorOnFailingRow(t *testing.T) {
	w := NewTSVWriter(failingWriter{})

	err := w.WriteRow("0", "http://dbpedia.org/resource/Vienna")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOpenStreamGroupCreatesAllArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "dbpedia1m")

	g, err := OpenStreamGroup(dir)
	require.NoError(t, err)

	require.NoError(t, g.Index.WriteRow("0", "http://dbpedia.org/resource/Vienna"))
	require.NoError(t, g.Relevant.WriteRow("0"))
	require.NoError(t, g.Close())

	for _, name := range []string{
		IndexFile, RelevantFile, LabelFile, StatementsTSVFile, StatementsNTFile,
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	assert.Equal(t, "0\thttp://dbpedia.org/resource/Vienna\n", readGzip(t, filepath.Join(dir, IndexFile)))
	assert.Equal(t, "0\n", readGzip(t, filepath.Join(dir, RelevantFile)))
}

func TestStreamGroupEmptyRunStillWellFormed(t *testing.T) {
	dir := t.TempDir()

	g, err := OpenStreamGroup(dir)
	require.NoError(t, err)
	require.NoError(t, g.Close())

	// Every artifact must exist and decompress cleanly even with zero rows.
	for _, name := range []string{
		IndexFile, RelevantFile, LabelFile, StatementsTSVFile, StatementsNTFile,
	} {
		assert.Empty(t, readGzip(t, filepath.Join(dir, name)))
	}
}

func readGzip(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}
