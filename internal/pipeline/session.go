package pipeline

import "gentestx/internal/domain"

// Session receives status messages as the pipeline advances. It is owned by
// the command that starts a run; nothing is shared between runs.
type Session interface {
	Reset()
	UpdateFile(path string)
	UpdateStatus(status string, progress int)
	UpdateAnalysis(analysis string)
	UpdateTestCases(cases []domain.TestCase)
	UpdateTestCode(code string)
}

// NopSession discards every update
type NopSession struct{}

func (NopSession) Reset()                            {}
func (NopSession) UpdateFile(string)                 {}
func (NopSession) UpdateStatus(string, int)          {}
func (NopSession) UpdateAnalysis(string)             {}
func (NopSession) UpdateTestCases([]domain.TestCase) {}
func (NopSession) UpdateTestCode(string)             {}
