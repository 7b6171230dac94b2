// Copyright Kevin Haller, 2026. All rights reserved.

// Package graphdb wraps the Neo4J bolt driver behind the narrow query
// surface the extraction core depends on: run a parameterized Cypher query,
// iterate the resulting records, and probe for a next record without
// consuming it.
package graphdb

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/pkg/types"
)

// Querier executes a Cypher query with named parameters and returns a
// forward-only cursor over the result records.
type Querier interface {
	Run(ctx context.Context, cypher string, params map[string]any) (Rows, error)
}

// Rows is a forward-only cursor over query result records. Peek reports
// whether another record is available without consuming it.
type Rows interface {
	Next(ctx context.Context) bool
	Peek(ctx context.Context) bool
	Record() *neo4j.Record
	Err() error
}

// Client owns the bolt driver for the lifetime of a run.
type Client struct {
	driver neo4j.DriverWithContext
	dbName string
}

// Connect builds a driver for the configured instance and verifies
// connectivity. Authentication or reachability failures surface here,
// before any output file is opened.
func Connect(ctx context.Context, cfg types.Neo4jConfig) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.BoltURI(),
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating driver for %s: %w", cfg.BoltURI(), err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("connecting to %s: %w", cfg.BoltURI(), err)
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "neo4j"
	}
	return &Client{driver: driver, dbName: dbName}, nil
}

// Session opens a read session. The caller must close it with CloseSession.
func (c *Client) Session(ctx context.Context) *Session {
	sess := c.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.dbName,
	})
	return &Session{sess: sess}
}

// Close releases the driver and its connection pool.
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}

// Session adapts a bolt session to the Querier interface.
type Session struct {
	sess neo4j.SessionWithContext
}

// Run executes the query and returns a cursor over its records.
func (s *Session) Run(ctx context.Context, cypher string, params map[string]any) (Rows, error) {
	result, err := s.sess.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	return &rows{result: result}, nil
}

// Close releases the underlying session.
func (s *Session) Close(ctx context.Context) error {
	return s.sess.Close(ctx)
}

type rows struct {
	result neo4j.ResultWithContext
}

func (r *rows) Next(ctx context.Context) bool { return r.result.Next(ctx) }
func (r *rows) Peek(ctx context.Context) bool { return r.result.Peek(ctx) }
func (r *rows) Record() *neo4j.Record         { return r.result.Record() }
func (r *rows) Err() error                    { return r.result.Err() }

// StringField extracts a named string field from a record. A missing field
// is a schema mismatch between the query and this program and is returned
// as an error; a null value decodes to the empty string.
func StringField(record *neo4j.Record, key string) (string, error) {
	val, ok := record.Get(key)
	if !ok {
		return "", fmt.Errorf("result record has no field %q (fields: %v)", key, record.Keys)
	}
	if val == nil {
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("result field %q is %T, expected string", key, val)
	}
	return s, nil
}
