package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// jsonMarshalIndent is a package-level variable so tests can substitute a
// failing marshaler
var jsonMarshalIndent = func(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// reportStore persists optimization reports as one JSON file per facility
// under a base directory. Persistence is a single synchronous write; write
// failures propagate to the caller rather than being swallowed.
type reportStore struct {
	dir string
}

// newReportStore creates a store rooted at dir, creating it if needed.
func newReportStore(dir string) (*reportStore, error) {
	if err := os.MkdirAll(dir, ReportDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	return &reportStore{dir: dir}, nil
}

// path returns the report file path for a facility name.
func (s *reportStore) path(facility string) string {
	return filepath.Join(s.dir, slugifyFacility(facility)+".json")
}

// Save writes a report to disk, replacing any previous report for the same
// facility.
func (s *reportStore) Save(report *OptimizationReport) error {
	data, err := jsonMarshalIndent(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(s.path(report.Facility), data, ReportFilePerm); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Load reads the persisted report for a facility. A missing file resolves
// to ErrNoReport so callers can recover locally.
func (s *reportStore) Load(facility string) (*OptimizationReport, error) {
	data, err := os.ReadFile(s.path(facility))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w for facility %q", ErrNoReport, facility)
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var report OptimizationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
