package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"gentestx/internal/config"
	"gentestx/internal/domain"

	"github.com/fatih/color"
)

func newTestFormatter(cfg *config.Config) (*Formatter, *bytes.Buffer) {
	color.NoColor = true
	var buf bytes.Buffer
	f := NewFormatter(cfg)
	f.out = &buf
	return f, &buf
}

func sampleReport() *domain.GenerationReport {
	return &domain.GenerationReport{
		SourcePath: "/project/calc.js",
		Language:   domain.LanguageJavaScript,
		Framework:  "jest",
		TestCases: []domain.TestCase{
			{Description: "adds two numbers", FunctionToTest: "add", Scenario: "normal"},
			{Description: "divides by zero", FunctionToTest: "divide", Scenario: "error handling"},
			{Description: "adds negatives", FunctionToTest: "add", Scenario: "edge case"},
		},
		TestCode:   "test('x', () => {});",
		OutputPath: "/project/calc.test.js",
		Status:     domain.StatusSuccess,
		Duration:   "1.2s",
	}
}

func TestFormatter_PrintReport_Success(t *testing.T) {
	f, buf := newTestFormatter(config.New())
	f.PrintReport(sampleReport())
	out := buf.String()

	for _, want := range []string{
		"Test Generation Summary",
		"/project/calc.js",
		"jest",
		"Found 3 test case(s):",
		"├── add",
		"└── divide",
		"[error handling]",
		"✓ Test file generated successfully at /project/calc.test.js",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "test('x'") {
		t.Error("test code should only be printed on dry run")
	}
}

func TestFormatter_PrintReport_DryRunAndErrors(t *testing.T) {
	t.Run("dry run prints the code", func(t *testing.T) {
		cfg := config.New()
		cfg.Flags.DryRun = true
		f, buf := newTestFormatter(cfg)
		f.PrintReport(sampleReport())

		if !strings.Contains(buf.String(), "Dry run: test file would be written to /project/calc.test.js") {
			t.Errorf("expected dry run notice:\n%s", buf.String())
		}
		if !strings.Contains(buf.String(), "test('x', () => {});") {
			t.Error("expected generated code in dry run output")
		}
	})

	t.Run("error and warnings", func(t *testing.T) {
		f, buf := newTestFormatter(config.New())
		report := sampleReport()
		report.Status = domain.StatusError
		report.Error = "failed to analyze code: Invalid API Key"
		report.Warnings = []string{"failed to create test directory /x/tests: permission denied"}
		f.PrintReport(report)

		out := buf.String()
		if !strings.Contains(out, "✗ Error generating tests: failed to analyze code: Invalid API Key") {
			t.Errorf("expected error line:\n%s", out)
		}
		if !strings.Contains(out, "⚠ failed to create test directory") {
			t.Errorf("expected warning line:\n%s", out)
		}
	})
}

func TestFormatter_PrintTestCases_Empty(t *testing.T) {
	f, buf := newTestFormatter(config.New())
	f.PrintTestCases(nil)

	if !strings.Contains(buf.String(), "No structured test cases found") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestFormatter_PrintLanguages(t *testing.T) {
	f, buf := newTestFormatter(config.New())
	f.PrintLanguages()
	out := buf.String()

	for _, want := range []string{"example.test.js", "example.test.ts", "test_example.py", "exampleTest.java", "pytest", "junit"} {
		if !strings.Contains(out, want) {
			t.Errorf("languages output missing %q:\n%s", want, out)
		}
	}
}

func TestSession_TracksRun(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	s := &Session{out: &buf, progress: NewProgressBar(io.Discard), verbose: true}

	s.Reset()
	s.UpdateFile("/project/src/calc.py")
	s.UpdateStatus(domain.StatusAnalyzing, 25)
	s.UpdateAnalysis("looks fine")
	s.UpdateTestCases([]domain.TestCase{{Description: "d"}})
	s.UpdateStatus(domain.StatusSuccess, 100)

	if !strings.Contains(buf.String(), "Generating tests for calc.py") {
		t.Errorf("expected file announcement:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "looks fine") {
		t.Error("verbose session should echo the analysis")
	}
	if len(s.TestCases()) != 1 {
		t.Errorf("expected 1 test case, got %d", len(s.TestCases()))
	}

	s.Reset()
	if len(s.TestCases()) != 0 {
		t.Error("reset should clear recorded test cases")
	}
}

func TestFormatTestCase(t *testing.T) {
	got := FormatTestCase(domain.TestCase{Description: "adds [two]", FunctionToTest: "add", Inputs: "1, 2"})

	if !strings.Contains(got, "[yellow]Function:[white]\nadd") {
		t.Errorf("expected function field:\n%s", got)
	}
	if strings.Contains(got, "Expected:") {
		t.Error("empty fields should be omitted")
	}
	if !strings.Contains(got, "adds [two[]") {
		t.Errorf("description should be escaped for tview:\n%s", got)
	}
}
