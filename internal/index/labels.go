// Copyright Kevin Haller, 2026. All rights reserved.

package index

import (
	"strconv"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/output"
)

// LabelRecord holds the human-readable annotations of one entity.
type LabelRecord struct {
	Label       string
	Description string
	Depiction   string
}

// LabelStore persists at most one label record per entity id. The set of
// ids already handled is held in memory and scoped to the run; the persisted
// label table of an earlier, interrupted run is never consulted.
type LabelStore struct {
	seen    map[int64]struct{}
	written int64
	w       *output.TSVWriter
}

// NewLabelStore returns an empty store writing to the label stream.
func NewLabelStore(w *output.TSVWriter) *LabelStore {
	return &LabelStore{
		seen: make(map[int64]struct{}),
		w:    w,
	}
}

// Has reports whether id has already been handled, either by Write or by
// MarkAbsent.
func (s *LabelStore) Has(id int64) bool {
	_, ok := s.seen[id]
	return ok
}

// Write appends (id, label, description, depiction) unless a record was
// already written or the id was marked absent. Repeated calls for the same
// id are silent no-ops; the first content persists.
func (s *LabelStore) Write(id int64, rec LabelRecord) error {
	if s.Has(id) {
		return nil
	}
	err := s.w.WriteRow(strconv.FormatInt(id, 10),
		rec.Label, rec.Description, rec.Depiction)
	if err != nil {
		return err
	}
	s.seen[id] = struct{}{}
	s.written++
	return nil
}

// MarkAbsent records that the entity has no label in the source graph. No
// row is written, and later lookups for the id are suppressed for the rest
// of the run.
func (s *LabelStore) MarkAbsent(id int64) {
	s.seen[id] = struct{}{}
}

// Written returns the number of label records persisted so far.
func (s *LabelStore) Written() int64 {
	return s.written
}
