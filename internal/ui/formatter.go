package ui

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gentestx/internal/config"
	"gentestx/internal/domain"
	"gentestx/internal/output"
	"gentestx/internal/prompt"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    os.Stdout,
	}
}

// PrintReport prints the summary of a generation run
func (f *Formatter) PrintReport(report *domain.GenerationReport) {
	fmt.Fprint(f.out, "\n")
	fmt.Fprintln(f.out, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, color.CyanString("║                      Test Generation Summary                  ║"))
	fmt.Fprintln(f.out, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Source", report.SourcePath)
	f.divider()
	f.row("Language", report.Language.String())
	f.divider()
	f.row("Framework", report.Framework)
	f.divider()
	f.row("Test Cases", fmt.Sprintf("%d", len(report.TestCases)))
	f.divider()
	f.row("Duration", report.Duration)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	f.PrintTestCases(report.TestCases)

	for _, warning := range report.Warnings {
		fmt.Fprintln(f.out, color.YellowString("⚠ %s", warning))
	}

	fmt.Fprintln(f.out)
	switch {
	case !report.Succeeded():
		fmt.Fprintln(f.out, color.RedString("✗ Error generating tests: %s", report.Error))
	case f.config.Flags.DryRun:
		fmt.Fprintln(f.out, color.YellowString("Dry run: test file would be written to %s", report.OutputPath))
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, report.TestCode)
	default:
		fmt.Fprintln(f.out, color.GreenString("✓ Test file generated successfully at %s", report.OutputPath))
	}
}

func (f *Formatter) row(label, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ %-27s │\n", label, value)
}

func (f *Formatter) divider() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// PrintTestCases prints the extracted cases as a tree grouped by function
func (f *Formatter) PrintTestCases(cases []domain.TestCase) {
	if len(cases) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No structured test cases found; generated tests cover all scenarios"))
		return
	}

	byFunction := make(map[string][]domain.TestCase)
	for _, tc := range cases {
		name := tc.FunctionToTest
		if name == "" {
			name = "(unspecified function)"
		}
		byFunction[name] = append(byFunction[name], tc)
	}

	var names []string
	for name := range byFunction {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(f.out, color.GreenString("Found %d test case(s):", len(cases)))
	for i, name := range names {
		isLastFunc := i == len(names)-1
		if isLastFunc {
			fmt.Fprintln(f.out, color.CyanString("└── %s", name))
		} else {
			fmt.Fprintln(f.out, color.CyanString("├── %s", name))
		}

		group := byFunction[name]
		for j, tc := range group {
			isLastCase := j == len(group)-1
			var prefix string
			if isLastFunc {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}
			fmt.Fprintf(f.out, "%s%s %s\n", prefix, color.YellowString("%s", tc.Description), scenarioTag(tc.Scenario))
		}
	}
}

// PrintLanguages lists supported languages with their naming rule and default framework
func (f *Formatter) PrintLanguages() {
	fmt.Fprintln(f.out, color.GreenString("Supported languages:"))
	fmt.Fprintf(f.out, "%-12s %-22s %s\n", "LANGUAGE", "TEST FILE", "DEFAULT FRAMEWORK")
	for _, lang := range domain.SupportedLanguages {
		fmt.Fprintf(f.out, "%-12s %-22s %s\n", lang, output.TestFileName("example"+sampleExtension(lang), lang), prompt.DefaultFramework(lang))
	}
}

func sampleExtension(lang domain.Language) string {
	switch lang {
	case domain.LanguageTypeScript:
		return ".ts"
	case domain.LanguagePython:
		return ".py"
	case domain.LanguageJava:
		return ".java"
	default:
		return ".js"
	}
}

func scenarioTag(scenario string) string {
	switch scenario {
	case "":
		return ""
	case "error handling":
		return color.RedString("[%s]", scenario)
	case "edge case":
		return color.MagentaString("[%s]", scenario)
	default:
		return color.WhiteString("[%s]", scenario)
	}
}
