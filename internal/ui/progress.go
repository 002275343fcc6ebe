package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks one generation run on a 0-100 scale
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar writing to w (stderr when nil)
func NewProgressBar(w io.Writer) *ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(describe("starting")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update moves the bar to progress and shows the status
func (p *ProgressBar) Update(status string, progress int) {
	p.bar.Describe(describe(status))
	p.bar.Set(progress)
}

// Reset rewinds the bar for a new run
func (p *ProgressBar) Reset() {
	p.bar.Reset()
	p.bar.Describe(describe("starting"))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}

// Abort stops the bar without filling it
func (p *ProgressBar) Abort() {
	p.bar.Exit()
}

func describe(status string) string {
	switch status {
	case "success":
		return color.GreenString("%-12s", status)
	case "error":
		return color.RedString("%-12s", status)
	default:
		return color.CyanString("%-12s", status)
	}
}
