package commands

import (
	"gentestx/internal/completion"
	"gentestx/internal/config"
	"gentestx/internal/discovery"
	"gentestx/internal/logging"
	"gentestx/internal/output"
	"gentestx/internal/parser"
	"gentestx/internal/pipeline"
	"gentestx/internal/storage"
	"gentestx/internal/ui"

	"go.uber.org/zap"
)

// Dependencies are shared by all commands. They are built once flags are parsed.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Scanner   *discovery.Scanner
	Filter    *discovery.Filter
	Storage   storage.Storage
	Pipeline  *pipeline.Pipeline
	Formatter *ui.Formatter
	Viewer    ui.Viewer
}

// Init loads the configuration for flags and wires the services on top of it
func (d *Dependencies) Init(flags config.Flags) error {
	loaded, err := config.Load(flags)
	if err != nil {
		return err
	}
	*d.Config = *loaded

	logger, err := logging.New(logging.Options{Verbose: flags.Verbose, LogFile: flags.LogFile})
	if err != nil {
		return err
	}
	d.Logger = logger

	cfg := d.Config
	d.Scanner = discovery.NewScanner(cfg.PathsToIgnore)
	d.Filter = discovery.NewFilter()
	d.Storage = storage.NewJSONStorage(cfg)
	d.Pipeline = pipeline.New(
		cfg,
		completion.NewClient(cfg, logger),
		parser.NewAnalysisParser(),
		output.NewNamer(cfg.GetWorkspaceRoot(), logger),
		d.Storage,
		logger,
	)
	d.Formatter = ui.NewFormatter(cfg)
	d.Viewer = ui.NewReportViewer()

	logger.Debug("configuration loaded",
		zap.String("workspace", cfg.GetWorkspaceRoot()),
		zap.String("model", cfg.Model),
		zap.String("output_location", cfg.OutputLocation),
		zap.String("test_framework", cfg.TestFramework),
	)
	return nil
}

// Close flushes and releases the logger
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync()
		d.Logger = nil
	}
}
