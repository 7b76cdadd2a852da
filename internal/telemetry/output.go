package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"card-tower-defense/internal/config"
)

// OutputManager writes per-round CSV output. A nil manager is disabled and
// every method is a no-op.
type OutputManager struct {
	dir                string
	roundsFile         *os.File
	roundHeaderWritten bool
}

// NewOutputManager creates the output directory and rounds.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "rounds.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating rounds.csv: %w", err)
	}
	return &OutputManager{dir: dir, roundsFile: f}, nil
}

// WriteConfig saves the session configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteRound appends one record to rounds.csv.
func (om *OutputManager) WriteRound(stats RoundStats) error {
	if om == nil {
		return nil
	}

	records := []RoundStats{stats}
	if !om.roundHeaderWritten {
		if err := gocsv.Marshal(records, om.roundsFile); err != nil {
			return fmt.Errorf("writing round: %w", err)
		}
		om.roundHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.roundsFile); err != nil {
		return fmt.Errorf("writing round: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.roundsFile == nil {
		return nil
	}
	return om.roundsFile.Close()
}
