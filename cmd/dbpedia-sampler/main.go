// Copyright Kevin Haller, 2026. All rights reserved.

// Package main is the entry point for the dbpedia-sampler CLI. Each
// extraction target is a subcommand of `sample`; connection parameters come
// from flags, overridable by NEO4J_* environment variables.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/khaller93/neo4j-dbpedia-subgraph-extractor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in the root PersistentPreRunE, before any subcommand
// runs.
var logger *zap.Logger

// rootCmd is the base command for the dbpedia-sampler CLI.
var rootCmd = &cobra.Command{
	Use:   "dbpedia-sampler",
	Short: "Extract bounded subgraph samples from a DBpedia knowledge graph",
	Long: `dbpedia-sampler extracts a bounded subgraph from a DBpedia knowledge graph
hosted in a Neo4J instance and serializes it to disk: an entity index with
dense integer identifiers, relevance flags, entity labels, and the sampled
statements in TSV and N-Triples form.

Each extraction methodology is a subcommand of "sample". Connection
parameters default to a local instance and can be overridden per flag or
via the NEO4J_HOSTNAME, NEO4J_BOLT_PORT, NEO4J_USERNAME and NEO4J_PASSWORD
environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional; ignore its absence.
		_ = godotenv.Load()

		log, err := newLogger(os.Getenv("LOG_LEVEL"))
		if err != nil {
			return err
		}
		logger = log
		return nil
	},
}

// newLogger builds the CLI logger at the given level (default info).
func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// neo4jConfig assembles the connection settings from flags and environment.
func neo4jConfig() types.Neo4jConfig {
	return types.Neo4jConfig{
		Host:     viper.GetString("neo4j.host"),
		Port:     viper.GetInt("neo4j.port"),
		Username: viper.GetString("neo4j.username"),
		Password: viper.GetString("neo4j.password"),
		Database: viper.GetString("neo4j.database"),
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("host", "localhost", "hostname of the Neo4J instance maintaining the DBpedia KG")
	flags.Int("port", 7687, "bolt port of the Neo4J instance")
	flags.String("username", "neo4j", "username for the Neo4J instance")
	flags.String("password", "neo4j", "password for the Neo4J instance")
	flags.String("database", "neo4j", "database name to open sessions against")

	for key, binding := range map[string]struct {
		flag string
		env  string
	}{
		"neo4j.host":     {"host", "NEO4J_HOSTNAME"},
		"neo4j.port":     {"port", "NEO4J_BOLT_PORT"},
		"neo4j.username": {"username", "NEO4J_USERNAME"},
		"neo4j.password": {"password", "NEO4J_PASSWORD"},
		"neo4j.database": {"database", "NEO4J_DATABASE"},
	} {
		_ = viper.BindPFlag(key, flags.Lookup(binding.flag))
		_ = viper.BindEnv(key, binding.env)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
