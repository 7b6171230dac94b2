// Copyright Kevin Haller, 2026. All rights reserved.

// Package index assigns dense sequential integer identifiers to entity URIs
// and persists the mapping. It is the sole writer of the entity index table
// and the relevant-entities table.
package index

import (
	"errors"
	"strconv"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/output"
)

// ErrNotIndexed is returned by Lookup for a URI that was never resolved.
var ErrNotIndexed = errors.New("entity not indexed")

// Index maps entity URIs to 0-based integers assigned in first-sight order
// with no gaps. An assigned id never changes within a run.
type Index struct {
	next     int64
	ids      map[string]int64
	indexW   *output.TSVWriter
	relevant *output.TSVWriter
}

// New returns an empty index writing to the given index and
// relevant-entities streams.
func New(indexW, relevantW *output.TSVWriter) *Index {
	return &Index{
		ids:      make(map[string]int64),
		indexW:   indexW,
		relevant: relevantW,
	}
}

// Resolve returns the id for uri, assigning the next sequential id on first
// sight. A first sight appends (id, uri) to the index table and, only when
// relevant is true, the id to the relevant-entities table. On repeated calls
// the stored id is returned and the relevant argument is ignored: relevance
// is recorded at first sight only.
func (ix *Index) Resolve(uri string, relevant bool) (int64, error) {
	if id, ok := ix.ids[uri]; ok {
		return id, nil
	}
	id := ix.next
	seq := strconv.FormatInt(id, 10)
	if relevant {
		if err := ix.relevant.WriteRow(seq); err != nil {
			return 0, err
		}
	}
	if err := ix.indexW.WriteRow(seq, uri); err != nil {
		return 0, err
	}
	ix.ids[uri] = id
	ix.next++
	return id, nil
}

// Lookup returns the id previously assigned to uri, or ErrNotIndexed when
// the URI has not been seen. It never assigns.
func (ix *Index) Lookup(uri string) (int64, error) {
	id, ok := ix.ids[uri]
	if !ok {
		return 0, ErrNotIndexed
	}
	return id, nil
}

// Count returns the number of distinct entities indexed so far.
func (ix *Index) Count() int64 {
	return ix.next
}
