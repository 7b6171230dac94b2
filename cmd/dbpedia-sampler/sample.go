// Copyright Kevin Haller, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/extract"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/internal/graphdb"
	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/pkg/types"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Extract a subgraph sample from the DBpedia KG",
	Long: `Sample runs one extraction methodology against the configured Neo4J
instance and writes the five output artifacts (entity index, relevant
entities, labels, statements in TSV and N-Triples form) plus a run manifest
to the data directory.`,
}

// newSampleCommand builds the subcommand for one dataset variant.
func newSampleCommand(ds extract.Dataset) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ds.Name,
		Short: fmt.Sprintf("using the %s methodology to sample the DBpedia KG (%s)", ds.Name, ds.Description),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			if dataDir == "" {
				dataDir = filepath.Join("data", ds.Name)
			}
			return runSample(cmd.Context(), ds, dataDir)
		},
	}
	cmd.Flags().String("data-dir", "", "directory for results (default ./data/<dataset>)")
	return cmd
}

func runSample(ctx context.Context, ds extract.Dataset, dataDir string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := graphdb.Connect(ctx, neo4jConfig())
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	session := client.Session(ctx)
	defer session.Close(ctx)

	extractor := extract.New(ds, session, types.ExtractionConfig{DataDir: dataDir}, logger)
	summary, err := extractor.Run(ctx)
	if err != nil {
		return fmt.Errorf("extraction %s: %w", ds.Name, err)
	}

	fmt.Printf("Extracted %d statements over %d entities into %s\n",
		summary.Statements, summary.Entities, dataDir)
	return nil
}

func init() {
	for _, name := range extract.DatasetNames() {
		ds, err := extract.DatasetByName(name)
		if err != nil {
			panic(err)
		}
		sampleCmd.AddCommand(newSampleCommand(ds))
	}
	rootCmd.AddCommand(sampleCmd)
}
