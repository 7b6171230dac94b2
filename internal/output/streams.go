// Copyright Kevin Haller, 2026. All rights reserved.

// Package output owns the five on-disk artifacts of an extraction run:
// the entity index table, the relevant-entities table, the label table and
// the statement tables in TSV and N-Triples form. All five are row-oriented,
// tab-separated (or triple-syntax) gzip-compressed text, opened together and
// closed together as one resource group.
package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Artifact file names, fixed by the output contract.
const (
	IndexFile         = "index.tsv.gz"
	RelevantFile      = "relevant_entities.tsv.gz"
	LabelFile         = "index_labels.tsv.gz"
	StatementsTSVFile = "statements.tsv.gz"
	StatementsNTFile  = "statements.nt.gz"
)

// TSVWriter writes tab-separated rows to one artifact stream.
type TSVWriter struct {
	w *csv.Writer
}

// NewTSVWriter returns a TSVWriter targeting w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{w: cw}
}

// WriteRow appends one row and flushes it through to the underlying
// stream, so an I/O failure surfaces on the row that hit it.
func (t *TSVWriter) WriteRow(fields ...string) error {
	if err := t.w.Write(fields); err != nil {
		return fmt.Errorf("writing tsv row: %w", err)
	}
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		return fmt.Errorf("writing tsv row: %w", err)
	}
	return nil
}

func (t *TSVWriter) flush() error {
	t.w.Flush()
	return t.w.Error()
}

// StreamGroup holds the five output streams of one run as a single scoped
// resource: acquired together by OpenStreamGroup, released together by
// Close on every exit path.
type StreamGroup struct {
	Index      *TSVWriter
	Relevant   *TSVWriter
	Labels     *TSVWriter
	Statements *TSVWriter
	Triples    *TripleWriter

	tsvs  []*TSVWriter
	gzips []*gzip.Writer
	files []*os.File
}

// OpenStreamGroup creates dir when missing and opens all five artifacts for
// writing. If any stream fails to open, the ones already opened are closed
// before returning the error.
func OpenStreamGroup(dir string) (*StreamGroup, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	g := &StreamGroup{}
	open := func(name string) (io.Writer, error) {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		g.files = append(g.files, f)
		zw := gzip.NewWriter(f)
		g.gzips = append(g.gzips, zw)
		return zw, nil
	}

	for _, target := range []struct {
		name string
		tsv  **TSVWriter
	}{
		{IndexFile, &g.Index},
		{RelevantFile, &g.Relevant},
		{LabelFile, &g.Labels},
		{StatementsTSVFile, &g.Statements},
	} {
		w, err := open(target.name)
		if err != nil {
			g.Close()
			return nil, err
		}
		tsv := NewTSVWriter(w)
		*target.tsv = tsv
		g.tsvs = append(g.tsvs, tsv)
	}

	w, err := open(StatementsNTFile)
	if err != nil {
		g.Close()
		return nil, err
	}
	g.Triples = NewTripleWriter(w)

	return g, nil
}

// Close flushes and closes every stream in the group. All streams are
// attempted even when earlier ones fail; the collected errors are returned
// joined. Safe to call on a partially opened group.
func (g *StreamGroup) Close() error {
	var errs []error
	for _, t := range g.tsvs {
		if err := t.flush(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, zw := range g.gzips {
		if err := zw.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing gzip stream: %w", err))
		}
	}
	for _, f := range g.files {
		if err := f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", f.Name(), err))
		}
	}
	return errors.Join(errs...)
}
