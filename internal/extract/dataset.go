// Copyright Kevin Haller, 2026. All rights reserved.

package extract

import (
	_ "embed"
	"fmt"
	"sort"
)

//go:embed query/label.cypher
var labelQuery string

//go:embed query/dbpedia35m_statements.cypher
var dbpedia35mQuery string

//go:embed query/dbpedia1m_statements.cypher
var dbpedia1mQuery string

//go:embed query/dbpedia500k_statements.cypher
var dbpedia500kQuery string

//go:embed query/dbpedia250k_statements.cypher
var dbpedia250kQuery string

//go:embed query/dbpediaA240_statements.cypher
var dbpediaA240Query string

//go:embed query/dbpedia1m_sample.cypher
var dbpedia1mSampleQuery string

// Dataset describes one extraction target: its statement query, its label
// query, and how the result set is fetched. Dataset variants are plain
// configurations; the extractor depends only on this capability.
type Dataset struct {
	// Name of the dataset, used as the subcommand and the default
	// data-directory leaf.
	Name string

	// Description shown in the CLI help.
	Description string

	// StatementQuery selects the candidate statements. Paged queries take
	// $skip and $limit parameters; direct queries take none.
	StatementQuery string

	// LabelQuery fetches label, description and depiction for one entity
	// by its $uri parameter.
	LabelQuery string

	// Paged selects the skip/limit cursor fetcher. When false the
	// statement query executes exactly once and its full result set is
	// streamed directly.
	Paged bool

	// ProgressInterval is the statement count between progress log
	// observations.
	ProgressInterval int64
}

var datasets = map[string]Dataset{
	"dbpedia35m": {
		Name:             "dbpedia35m",
		Description:      "full 35M-statement DBpedia subgraph",
		StatementQuery:   dbpedia35mQuery,
		LabelQuery:       labelQuery,
		Paged:            true,
		ProgressInterval: 1_000_000,
	},
	"dbpedia1m": {
		Name:             "dbpedia1m",
		Description:      "~1M-statement sample of well-connected resources",
		StatementQuery:   dbpedia1mQuery,
		LabelQuery:       labelQuery,
		Paged:            true,
		ProgressInterval: 1_000_000,
	},
	"dbpedia500k": {
		Name:             "dbpedia500k",
		Description:      "~500K-statement sample of highly connected resources",
		StatementQuery:   dbpedia500kQuery,
		LabelQuery:       labelQuery,
		Paged:            true,
		ProgressInterval: 1_000_000,
	},
	"dbpedia250k": {
		Name:             "dbpedia250k",
		Description:      "~250K-statement sample of the most connected resources",
		StatementQuery:   dbpedia250kQuery,
		LabelQuery:       labelQuery,
		Paged:            true,
		ProgressInterval: 1_000_000,
	},
	"dbpediaa240": {
		Name:             "dbpediaa240",
		Description:      "statements among the 240K highest-ranked articles",
		StatementQuery:   dbpediaA240Query,
		LabelQuery:       labelQuery,
		Paged:            true,
		ProgressInterval: 1_000_000,
	},
	"dbpedia1m-direct": {
		Name:             "dbpedia1m-direct",
		Description:      "dbpedia1m methodology in a single round trip",
		StatementQuery:   dbpedia1mSampleQuery,
		LabelQuery:       labelQuery,
		Paged:            false,
		ProgressInterval: 100_000,
	},
}

// DatasetByName returns the named dataset configuration.
func DatasetByName(name string) (Dataset, error) {
	ds, ok := datasets[name]
	if !ok {
		return Dataset{}, fmt.Errorf("unknown dataset %q (available: %v)", name, DatasetNames())
	}
	return ds, nil
}

// DatasetNames lists the available dataset names in lexical order.
func DatasetNames() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
