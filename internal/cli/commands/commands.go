package commands

import (
	"gentestx/internal/cli"
	"gentestx/internal/config"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate  *GenerateCommand
	Show      *ShowCommand
	Watch     *WatchCommand
	Languages *LanguagesCommand

	deps *Dependencies
}

// NewCommands creates all commands over a shared dependency set. The
// dependencies are filled in by Init once flags are parsed.
func NewCommands(cfg *config.Config) *Commands {
	deps := &Dependencies{Config: cfg}

	return &Commands{
		Generate:  NewGenerateCommand(deps),
		Show:      NewShowCommand(deps),
		Watch:     NewWatchCommand(deps),
		Languages: NewLanguagesCommand(deps),
		deps:      deps,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	// withDeps wires the dependencies before run and flushes the logger after
	// it, including when run fails.
	withDeps := func(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if err := c.deps.Init(flags.ToConfigFlags()); err != nil {
				return err
			}
			defer c.deps.Close()
			return run(cmd, args)
		}
	}

	rootCmd.PersistentFlags().StringVarP(&flags.Workspace, "workspace", "w", "", "Workspace root used for config, state and test directory lookup (defaults to the current directory)")
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to a YAML config file (defaults to <workspace>/"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print the analysis and enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.LogFile, "log-file", "", "Also write structured logs to this file")

	// Generate command
	generateCmd := &cobra.Command{
		Use:     "generate <file|dir>...",
		Aliases: []string{"gen"},
		Short:   "Generate tests for source files",
		Long:    "Analyze each source file with the completion service, extract test cases and write a test file next to the source",
		Example: "  gentestx generate src/calc.js\n  gentestx generate --framework pytest --filter '*service*' lib/",
		Args:    cobra.MinimumNArgs(1),
		RunE:    withDeps(c.Generate.Execute),
	}
	addGenerationFlags(generateCmd, flags)
	generateCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter files found in directories by name pattern (supports wildcards, e.g., '*.ts' or '*service*')")
	generateCmd.Flags().StringVarP(&flags.Language, "language", "l", "", "Editor language id overriding extension detection (javascript, typescript, python, java, javascriptreact, typescriptreact)")
	generateCmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the generated test code instead of writing it")
	generateCmd.Flags().BoolVar(&flags.View, "view", false, "Open the report viewer after the last file is generated")
	rootCmd.AddCommand(generateCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "View the last generation report interactively",
		Long:    "Display the analysis, extracted test cases and generated code from the last run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    withDeps(c.Show.Execute),
	}
	rootCmd.AddCommand(showCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:     "watch <dir>",
		Short:   "Regenerate tests when source files are saved",
		Long:    "Watch a directory tree and generate tests for each supported source file after it is saved, one file at a time",
		Args:    cobra.ExactArgs(1),
		RunE:    withDeps(c.Watch.Execute),
	}
	addGenerationFlags(watchCmd, flags)
	rootCmd.AddCommand(watchCmd)

	// Languages command
	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Long:  "List the supported languages with their test file naming rule and default framework",
		Args:  cobra.NoArgs,
		RunE:  c.Languages.Execute,
	}
	rootCmd.AddCommand(languagesCmd)
}

func addGenerationFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.APIKey, "api-key", "k", "", "API key for the completion service (or set "+config.EnvAPIKey+")")
	cmd.Flags().StringVar(&flags.Framework, "framework", "", "Test framework: auto, jest, pytest or junit")
	cmd.Flags().StringVarP(&flags.OutputLocation, "output-location", "o", "", "Where to write tests: sameDirectory or testDirectory")
}
