package domain

import "time"

// Status values posted to a session while a generation runs.
const (
	StatusIdle       = "idle"
	StatusAnalyzing  = "analyzing"
	StatusGenerating = "generating"
	StatusSuccess    = "success"
	StatusError      = "error"
)

// GenerationReport captures everything shown for one generation run
type GenerationReport struct {
	ID         string     `json:"id"`
	SourcePath string     `json:"source_path"`
	Language   Language   `json:"language"`
	Framework  string     `json:"framework"`
	Analysis   string     `json:"analysis"`
	TestCases  []TestCase `json:"test_cases"`
	TestCode   string     `json:"test_code"`
	OutputPath string     `json:"output_path"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	Warnings   []string   `json:"warnings,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	Duration   string     `json:"duration"`
}

// Succeeded reports whether the run wrote a test file
func (r *GenerationReport) Succeeded() bool {
	return r.Status == StatusSuccess
}
