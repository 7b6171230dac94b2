// Copyright Kevin Haller, 2026. All rights reserved.

// Package extract implements the extraction pipeline: it pulls candidate
// statements from the graph database, indexes their entities, labels the
// subject and object endpoints, and writes the five output artifacts.
package extract

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/graphdb"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/index"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/output"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/pkg/types"
)

// Extractor orchestrates one extraction run. A run is single use: the
// output streams and the entity map belong to one Run call, and a new run
// needs a fresh Extractor.
type Extractor struct {
	ds      Dataset
	querier graphdb.Querier
	dataDir string
	log     *zap.Logger
}

// New returns an extractor for the given dataset, query session and target
// directory.
func New(ds Dataset, querier graphdb.Querier, cfg types.ExtractionConfig, log *zap.Logger) *Extractor {
	return &Extractor{ds: ds, querier: querier, dataDir: cfg.DataDir, log: log}
}

// Run performs one forward pass over the dataset's statement sequence. It
// opens the five output streams as one scoped group, writes every fetched
// statement, labels each statement's subject and object on first sight, and
// closes the group on every exit path. On success the run manifest is
// written next to the artifacts.
func (e *Extractor) Run(ctx context.Context) (RunSummary, error) {
	started := time.Now().UTC()

	group, err := output.OpenStreamGroup(e.dataDir)
	if err != nil {
		return RunSummary{}, err
	}

	ix := index.New(group.Index, group.Relevant)
	labels := index.NewLabelStore(group.Labels)
	writer := NewStatementWriter(ix, group.Statements, group.Triples)
	fetcher := newFetcher(e.ds, e.querier)

	count, err := e.extract(ctx, fetcher, writer, ix, labels)
	if err != nil {
		// Release the stream group before propagating; the artifacts stay
		// on disk as-is for inspection.
		group.Close()
		return RunSummary{}, err
	}
	if err := group.Close(); err != nil {
		return RunSummary{}, err
	}

	summary := newRunSummary(e.ds.Name, started, count, ix.Count(), labels.Written())
	if err := writeManifest(e.dataDir, summary); err != nil {
		return RunSummary{}, err
	}

	e.log.Info("successfully loaded statements",
		zap.String("dataset", e.ds.Name),
		zap.Int64("statements", count),
		zap.Int64("entities", ix.Count()))
	return summary, nil
}

func (e *Extractor) extract(ctx context.Context, fetcher Fetcher, writer *StatementWriter, ix *index.Index, labels *index.LabelStore) (int64, error) {
	var count int64
	for fetcher.Next(ctx) {
		stmt := fetcher.Statement()
		if err := writer.Write(stmt); err != nil {
			return count, err
		}
		for _, uri := range []string{stmt.Subject, stmt.Object} {
			if err := e.labelEntity(ctx, uri, ix, labels); err != nil {
				return count, err
			}
		}
		count++
		if count%e.ds.ProgressInterval == 0 {
			e.log.Info("loaded statements", zap.Int64("count", count))
		}
	}
	return count, fetcher.Err()
}

// labelEntity fetches and persists the label record for uri unless the
// entity was already handled this run. A lookup producing no row marks the
// entity as having no label, suppressing further lookups without writing a
// record.
func (e *Extractor) labelEntity(ctx context.Context, uri string, ix *index.Index, labels *index.LabelStore) error {
	id, err := ix.Lookup(uri)
	if err != nil {
		return fmt.Errorf("labeling %q: %w", uri, err)
	}
	if labels.Has(id) {
		return nil
	}

	rows, err := e.querier.Run(ctx, e.ds.LabelQuery, map[string]any{"uri": uri})
	if err != nil {
		return fmt.Errorf("fetching label for %q: %w", uri, err)
	}
	if !rows.Next(ctx) {
		if err := rows.Err(); err != nil {
			return fmt.Errorf("fetching label for %q: %w", uri, err)
		}
		labels.MarkAbsent(id)
		return nil
	}

	record := rows.Record()
	label, err := graphdb.StringField(record, "label")
	if err != nil {
		return err
	}
	description, err := graphdb.StringField(record, "description")
	if err != nil {
		return err
	}
	depiction, err := graphdb.StringField(record, "depiction")
	if err != nil {
		return err
	}
	return labels.Write(id, index.LabelRecord{
		Label:       label,
		Description: description,
		Depiction:   depiction,
	})
}
