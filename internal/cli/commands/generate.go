package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gentestx/internal/domain"
	"gentestx/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errLanguageWithDirectory rejects one language override for a whole tree
var errLanguageWithDirectory = errors.New("--language applies to named files only; files found in directories are detected by extension")

// GenerateCommand handles the generate command
type GenerateCommand struct {
	deps *Dependencies
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(deps *Dependencies) *GenerateCommand {
	return &GenerateCommand{deps: deps}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	sources, err := gc.collect(args)
	if err != nil {
		return err
	}

	if len(sources) == 0 {
		color.Yellow("No source files to generate tests for")
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var last *domain.GenerationReport
	failed := 0
	for _, source := range sources {
		report, err := gc.generate(ctx, source)
		if report != nil {
			last = report
		}
		if err == nil {
			continue
		}

		// A bad configuration fails every file the same way
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) || ctx.Err() != nil {
			return err
		}
		failed++
	}

	if gc.deps.Config.Flags.View && last != nil {
		if err := gc.deps.Viewer.View(last); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(sources))
	}
	return nil
}

// collect expands directories into their source files. Files named explicitly
// are kept as given so unsupported ones are reported.
func (gc *GenerateCommand) collect(args []string) ([]string, error) {
	var sources []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("source path does not exist: %s", arg)
		}
		if !info.IsDir() {
			sources = append(sources, arg)
			continue
		}
		if gc.deps.Config.Flags.Language != "" {
			return nil, &domain.ConfigurationError{Field: "language", Err: errLanguageWithDirectory}
		}

		found, err := gc.deps.Scanner.Scan(arg)
		if err != nil {
			return nil, err
		}
		found = gc.deps.Filter.FilterByName(found, gc.deps.Config.Flags.NameFilter)
		gc.deps.Logger.Debug("scanned directory", zap.String("dir", arg), zap.Int("sources", len(found)))
		sources = append(sources, found...)
	}
	return sources, nil
}

func (gc *GenerateCommand) generate(ctx context.Context, source string) (*domain.GenerationReport, error) {
	session := ui.NewSession(gc.deps.Config.Flags.Verbose)
	report, err := gc.deps.Pipeline.Run(ctx, source, session)
	if report != nil {
		gc.deps.Formatter.PrintReport(report)
	} else if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %s: %v", source, err))
	}
	return report, err
}
