// Copyright Kevin Haller, 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/graphdb"
)

// PageSize is the skip/limit cursor page size used by paged fetchers.
const PageSize = 1_000_000

// Statement is one extracted triple of URIs.
type Statement struct {
	Subject   string
	Predicate string
	Object    string
}

// Fetcher presents the candidate statements as a single lazy, finite,
// non-restartable sequence, in the scanner idiom: Next advances, Statement
// returns the current triple, Err reports what terminated the sequence.
type Fetcher interface {
	Next(ctx context.Context) bool
	Statement() Statement
	Err() error
}

// newFetcher builds the fetcher matching the dataset's fetch mode.
func newFetcher(ds Dataset, q graphdb.Querier) Fetcher {
	if ds.Paged {
		return &pagedFetcher{q: q, query: ds.StatementQuery, pageSize: PageSize}
	}
	return &directFetcher{q: q, query: ds.StatementQuery}
}

// pagedFetcher pulls statements page by page with a skip/limit cursor. After
// each drained page the skip advances by the page size; a page whose
// lookahead probe yields no row terminates the sequence.
type pagedFetcher struct {
	q        graphdb.Querier
	query    string
	pageSize int64

	skip    int64
	rows    graphdb.Rows
	current Statement
	err     error
	done    bool
}

func (f *pagedFetcher) Next(ctx context.Context) bool {
	if f.err != nil || f.done {
		return false
	}
	for {
		if f.rows == nil {
			rows, err := f.q.Run(ctx, f.query, map[string]any{
				"skip":  f.skip,
				"limit": f.pageSize,
			})
			if err != nil {
				f.err = fmt.Errorf("fetching page at offset %d: %w", f.skip, err)
				return false
			}
			if !rows.Peek(ctx) {
				if err := rows.Err(); err != nil {
					f.err = fmt.Errorf("probing page at offset %d: %w", f.skip, err)
				}
				f.done = true
				return false
			}
			f.rows = rows
		}

		if f.rows.Next(ctx) {
			stmt, err := statementFromRecord(f.rows.Record())
			if err != nil {
				f.err = err
				return false
			}
			f.current = stmt
			return true
		}
		if err := f.rows.Err(); err != nil {
			f.err = fmt.Errorf("draining page at offset %d: %w", f.skip, err)
			return false
		}

		// Page drained; request the next one.
		f.rows = nil
		f.skip += f.pageSize
	}
}

func (f *pagedFetcher) Statement() Statement { return f.current }
func (f *pagedFetcher) Err() error           { return f.err }

// directFetcher executes the statement query exactly once and streams the
// full result set. Used for samples small enough for one round trip.
type directFetcher struct {
	q     graphdb.Querier
	query string

	rows    graphdb.Rows
	current Statement
	err     error
}

func (f *directFetcher) Next(ctx context.Context) bool {
	if f.err != nil {
		return false
	}
	if f.rows == nil {
		rows, err := f.q.Run(ctx, f.query, nil)
		if err != nil {
			f.err = fmt.Errorf("fetching statements: %w", err)
			return false
		}
		f.rows = rows
	}
	if !f.rows.Next(ctx) {
		if err := f.rows.Err(); err != nil {
			f.err = fmt.Errorf("streaming statements: %w", err)
		}
		return false
	}
	stmt, err := statementFromRecord(f.rows.Record())
	if err != nil {
		f.err = err
		return false
	}
	f.current = stmt
	return true
}

func (f *directFetcher) Statement() Statement { return f.current }
func (f *directFetcher) Err() error           { return f.err }

// statementFromRecord decodes the fixed subj/pred/obj column contract. A
// missing column is a schema mismatch and fatal to the run.
func statementFromRecord(record *neo4j.Record) (Statement, error) {
	subj, err := graphdb.StringField(record, "subj")
	if err != nil {
		return Statement{}, err
	}
	pred, err := graphdb.StringField(record, "pred")
	if err != nil {
		return Statement{}, err
	}
	obj, err := graphdb.StringField(record, "obj")
	if err != nil {
		return Statement{}, err
	}
	return Statement{Subject: subj, Predicate: pred, Object: obj}, nil
}
