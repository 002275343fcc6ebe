package ui

import "gentestx/internal/domain"

// Viewer displays a generation report interactively
type Viewer interface {
	View(report *domain.GenerationReport) error
}
