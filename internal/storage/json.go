package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gentestx/internal/domain"
)

// ErrNoReport is returned by Load when no generation has been recorded yet.
var ErrNoReport = errors.New("no generation report found; run gentestx generate first")

// Save writes the report to the configured state file.
func (s *JSONStorage) Save(report *domain.GenerationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetStatePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last generation report from the configured state file.
func (s *JSONStorage) Load() (*domain.GenerationReport, error) {
	path := s.cfg.GetStatePath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoReport
		}
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.GenerationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
