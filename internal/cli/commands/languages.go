package commands

import (
	"gentestx/internal/config"
	"gentestx/internal/ui"

	"github.com/spf13/cobra"
)

// LanguagesCommand handles the languages command
type LanguagesCommand struct {
	deps *Dependencies
}

// NewLanguagesCommand creates a new LanguagesCommand
func NewLanguagesCommand(deps *Dependencies) *LanguagesCommand {
	return &LanguagesCommand{deps: deps}
}

// Execute runs the command. It needs no credentials or workspace config.
func (lc *LanguagesCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.deps.Config
	if cfg == nil {
		cfg = config.New()
	}
	ui.NewFormatter(cfg).PrintLanguages()
	return nil
}
