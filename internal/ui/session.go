package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gentestx/internal/domain"

	"github.com/fatih/color"
)

// Session is the terminal status surface for generation runs. The command that
// starts a run creates and owns it.
type Session struct {
	out      io.Writer
	progress *ProgressBar
	verbose  bool
	cases    []domain.TestCase
}

// NewSession creates a terminal session. With verbose set the analysis text is echoed.
func NewSession(verbose bool) *Session {
	return &Session{
		out:      os.Stdout,
		progress: NewProgressBar(os.Stderr),
		verbose:  verbose,
	}
}

// Reset clears state from a previous run
func (s *Session) Reset() {
	s.cases = nil
	s.progress.Reset()
}

// UpdateFile announces the file being processed
func (s *Session) UpdateFile(path string) {
	fmt.Fprintln(s.out, color.CyanString("Generating tests for %s", filepath.Base(path)))
}

// UpdateStatus advances the progress bar
func (s *Session) UpdateStatus(status string, progress int) {
	switch status {
	case domain.StatusSuccess:
		s.progress.Update(status, progress)
		s.progress.Finish()
	case domain.StatusError:
		s.progress.Update(status, progress)
		s.progress.Abort()
	default:
		s.progress.Update(status, progress)
	}
}

// UpdateAnalysis echoes the analysis when verbose
func (s *Session) UpdateAnalysis(analysis string) {
	if !s.verbose {
		return
	}
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, color.YellowString("Analysis:"))
	fmt.Fprintln(s.out, analysis)
}

// UpdateTestCases records the extracted cases for the summary
func (s *Session) UpdateTestCases(cases []domain.TestCase) {
	s.cases = cases
}

// UpdateTestCode is a no-op in the terminal; the code is written to disk.
func (s *Session) UpdateTestCode(code string) {}

// TestCases returns the cases extracted in the current run
func (s *Session) TestCases() []domain.TestCase {
	return s.cases
}
