package storage

import (
	"gentestx/internal/config"
	"gentestx/internal/domain"
)

// Storage persists and loads the last generation report (e.g. for the show viewer).
type Storage interface {
	Save(report *domain.GenerationReport) error
	Load() (*domain.GenerationReport, error)
}

// JSONStorage stores the report in a JSON file under the workspace state directory.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's state path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
