// Copyright Kevin Haller, 2026. All rights reserved.

package extract

import (
	"strconv"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/index"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/output"
)

// StatementWriter persists each statement in two formats: one (subjectId,
// predicateId, objectId) row in the index-form table and one N-Triples line.
// It owns both statement streams exclusively and drives id resolution
// through the entity index.
type StatementWriter struct {
	index   *index.Index
	tsv     *output.TSVWriter
	triples *output.TripleWriter
}

// NewStatementWriter returns a writer resolving ids through ix.
func NewStatementWriter(ix *index.Index, tsv *output.TSVWriter, triples *output.TripleWriter) *StatementWriter {
	return &StatementWriter{index: ix, tsv: tsv, triples: triples}
}

// Write resolves the three URIs in subject, predicate, object order (which
// fixes id-assignment order for entities first seen in this statement),
// marking subject and object relevant and the predicate not, then appends
// one row to each statement stream. Duplicate statements are written again;
// multiplicity is preserved.
func (w *StatementWriter) Write(stmt Statement) error {
	s, err := w.index.Resolve(stmt.Subject, true)
	if err != nil {
		return err
	}
	p, err := w.index.Resolve(stmt.Predicate, false)
	if err != nil {
		return err
	}
	o, err := w.index.Resolve(stmt.Object, true)
	if err != nil {
		return err
	}

	err = w.tsv.WriteRow(
		strconv.FormatInt(s, 10),
		strconv.FormatInt(p, 10),
		strconv.FormatInt(o, 10),
	)
	if err != nil {
		return err
	}
	return w.triples.WriteTriple(stmt.Subject, stmt.Predicate, stmt.Object)
}
