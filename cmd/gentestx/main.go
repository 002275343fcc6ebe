package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gentestx/internal/cli"
	"gentestx/internal/cli/commands"
	"gentestx/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "gentestx",
		Short:         "AI-assisted unit test generator",
		Long:          `Generate unit tests for JavaScript, TypeScript, Python and Java sources. Each file is analyzed by a chat-completion service, test cases are extracted from the analysis and a test file is written next to the source.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
