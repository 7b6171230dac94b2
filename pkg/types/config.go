// Copyright Kevin Haller, 2026. All rights reserved.

// Package types holds configuration and shared value types used by the CLI
// and the extraction core.
package types

import "fmt"

// Neo4jConfig holds connection settings for the Neo4J instance maintaining
// the DBpedia knowledge graph. Every field is overridable by environment
// variable (NEO4J_HOSTNAME, NEO4J_BOLT_PORT, NEO4J_USERNAME, NEO4J_PASSWORD).
type Neo4jConfig struct {
	// Host of the Neo4J instance (default "localhost").
	Host string `json:"host" yaml:"host"`

	// Port is the bolt port of the Neo4J instance (default 7687).
	Port int `json:"port" yaml:"port"`

	// Username for authentication (default "neo4j").
	Username string `json:"username" yaml:"username"`

	// Password for authentication (default "neo4j").
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Database is the name of the database to open sessions against
	// (default "neo4j").
	Database string `json:"database" yaml:"database"`
}

// BoltURI returns the connection URI for the configured instance.
func (c Neo4jConfig) BoltURI() string {
	return fmt.Sprintf("neo4j://%s:%d", c.Host, c.Port)
}

// ExtractionConfig holds settings for one extraction run.
type ExtractionConfig struct {
	// DataDir is the directory the five output artifacts are written to.
	// Created when missing (default "./data/<dataset>").
	DataDir string `json:"data_dir" yaml:"data_dir"`
}
