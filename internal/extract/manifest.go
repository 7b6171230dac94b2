// Copyright Kevin Haller, 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
)

// manifestFile is written next to the five artifacts after a successful run.
const manifestFile = "run.yaml"

// RunSummary records what one completed extraction run produced. It is
// returned to the caller and persisted as the run manifest.
type RunSummary struct {
	RunID      string    `yaml:"run_id"`
	Dataset    string    `yaml:"dataset"`
	Statements int64     `yaml:"statements"`
	Entities   int64     `yaml:"entities"`
	Labeled    int64     `yaml:"labeled"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

func newRunSummary(dataset string, started time.Time, statements, entities, labeled int64) RunSummary {
	return RunSummary{
		RunID:      uuid.NewString(),
		Dataset:    dataset,
		Statements: statements,
		Entities:   entities,
		Labeled:    labeled,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
}

// writeManifest saves the summary as dir/run.yaml.
func writeManifest(dir string, summary RunSummary) error {
	data, err := yaml.Marshal(&summary)
	if err != nil {
		return fmt.Errorf("marshaling run manifest: %w", err)
	}
	path := filepath.Join(dir, manifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run manifest: %w", err)
	}
	return nil
}
