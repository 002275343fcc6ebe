package commands

import (
	"errors"

	"gentestx/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	deps *Dependencies
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(deps *Dependencies) *ShowCommand {
	return &ShowCommand{deps: deps}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := sc.deps.Storage.Load()
	if errors.Is(err, storage.ErrNoReport) {
		color.Yellow("No generation report found. Run 'gentestx generate <file>' first.")
		return nil
	}
	if err != nil {
		return err
	}

	return sc.deps.Viewer.View(report)
}
