// Package telemetry writes assessment results as CSV and summarises
// parameter sweeps.
package telemetry

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/impact/config"
	"github.com/pthm-cable/impact/scenario"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir            string
	assessmentFile *os.File
	statsFile      *os.File

	// Track if headers have been written
	assessmentHeaderWritten bool
	statsHeaderWritten      bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "assessments.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating assessments.csv: %w", err)
	}
	om.assessmentFile = f

	f, err = os.Create(filepath.Join(dir, "sweep_stats.csv"))
	if err != nil {
		om.assessmentFile.Close()
		return nil, fmt.Errorf("creating sweep_stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteAssessments appends assessment rows to assessments.csv.
func (om *OutputManager) WriteAssessments(as ...scenario.Assessment) error {
	if om == nil || len(as) == 0 {
		return nil
	}

	records := make([]AssessmentRecord, len(as))
	for i, a := range as {
		records[i] = NewAssessmentRecord(a)
	}

	if err := writeCSV(om.assessmentFile, records, &om.assessmentHeaderWritten); err != nil {
		return fmt.Errorf("writing assessments: %w", err)
	}
	return nil
}

// WriteStats appends a sweep summary to sweep_stats.csv.
func (om *OutputManager) WriteStats(s SweepStats) error {
	if om == nil {
		return nil
	}
	if err := writeCSV(om.statsFile, []SweepStats{s}, &om.statsHeaderWritten); err != nil {
		return fmt.Errorf("writing sweep stats: %w", err)
	}
	return nil
}

// WriteAssessmentJSON saves a single assessment as indented JSON.
func (om *OutputManager) WriteAssessmentJSON(name string, a scenario.Assessment) error {
	if om == nil {
		return nil
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling assessment: %w", err)
	}
	if err := os.WriteFile(filepath.Join(om.dir, name), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// writeCSV writes records, including the header on the first call only.
func writeCSV(w io.Writer, records any, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, w); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, w)
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.assessmentFile != nil {
		if err := om.assessmentFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.statsFile != nil {
		if err := om.statsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
