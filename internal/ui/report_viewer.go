package ui

import (
	"fmt"
	"strings"

	"gentestx/internal/domain"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ReportViewer displays a generation report in an interactive TUI: the
// analysis, the extracted test cases and the generated code.
type ReportViewer struct{}

// NewReportViewer creates a new ReportViewer
func NewReportViewer() *ReportViewer {
	return &ReportViewer{}
}

// entry is one selectable item in the left-hand list
type entry struct {
	title  string
	detail func() string
}

// View displays the report until the user exits
func (rv *ReportViewer) View(report *domain.GenerationReport) error {
	if report == nil {
		color.Yellow("No generation report to show")
		return nil
	}

	entries := rv.entries(report)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, e := range entries {
		list.AddItem(e.title, "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	statsView.SetText(rv.formatStats(report))

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	// Right side: stats on top, details below, with right padding
	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	headerView.SetText(fmt.Sprintf(" GenTestX | %d test case(s) | Use ↑↓ to navigate, → to view details, ← to go back, q or Ctrl+C to exit ", len(report.TestCases)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(entries) {
			detailsView.SetText(entries[index].detail())
			detailsView.ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func (rv *ReportViewer) entries(report *domain.GenerationReport) []entry {
	entries := []entry{
		{title: "[cyan]Analysis[white]", detail: func() string { return tview.Escape(orPlaceholder(report.Analysis, "No analysis available")) }},
		{title: "[cyan]Test Code[white]", detail: func() string { return tview.Escape(orPlaceholder(report.TestCode, "No test code generated")) }},
	}
	for i, tc := range report.TestCases {
		tc := tc
		title := tc.Description
		if title == "" {
			title = fmt.Sprintf("Test case %d", i+1)
		}
		entries = append(entries, entry{
			title:  fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(title)),
			detail: func() string { return FormatTestCase(tc) },
		})
	}
	return entries
}

// FormatTestCase renders a test case using tview color tags
func FormatTestCase(tc domain.TestCase) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "[green]%s[white]\n\n", tview.Escape(orPlaceholder(tc.Description, "(no description)")))
	writeField := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&builder, "[yellow]%s:[white]\n%s\n\n", label, tview.Escape(value))
	}
	writeField("Function", tc.FunctionToTest)
	writeField("Inputs", tc.Inputs)
	writeField("Expected", tc.ExpectedOutput)
	writeField("Scenario", tc.Scenario)

	return builder.String()
}

func (rv *ReportViewer) formatStats(report *domain.GenerationReport) string {
	status := fmt.Sprintf("[green]%s[white]", report.Status)
	if !report.Succeeded() {
		status = fmt.Sprintf("[red]%s[white]", report.Status)
	}
	line := fmt.Sprintf("[cyan]source:[white] [yellow]%s[white] | [cyan]framework:[white] %s | [cyan]status:[white] %s",
		tview.Escape(report.SourcePath), report.Framework, status)
	if report.OutputPath != "" {
		line += fmt.Sprintf("\n[cyan]output:[white] [yellow]%s[white]", tview.Escape(report.OutputPath))
	}
	if report.Error != "" {
		line += fmt.Sprintf("\n[red]%s[white]", tview.Escape(report.Error))
	}
	return line
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
