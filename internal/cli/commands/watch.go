package commands

import (
	"context"
	"errors"

	"gentestx/internal/domain"
	"gentestx/internal/watch"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	deps *Dependencies
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(deps *Dependencies) *WatchCommand {
	return &WatchCommand{deps: deps}
}

// Execute runs the command until interrupted
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	// Fail before watching if no run could ever succeed
	if err := wc.deps.Config.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	watcher, err := watch.NewWatcher(args[0], wc.deps.Scanner, wc.deps.Logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx); err != nil {
		return err
	}
	color.Cyan("Watching %s for changes (Ctrl+C to stop)", args[0])

	generator := NewGenerateCommand(wc.deps)
	for event := range watcher.Events() {
		if event.Error != nil {
			wc.deps.Logger.Warn("watch error", zap.Error(event.Error))
			continue
		}

		_, err := generator.generate(ctx, event.Path)
		if err == nil {
			continue
		}
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			return err
		}
		if ctx.Err() != nil {
			break
		}
	}

	color.Cyan("Stopped watching")
	return nil
}
