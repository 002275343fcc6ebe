package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gentestx/internal/completion"
	"gentestx/internal/config"
	"gentestx/internal/domain"
	"gentestx/internal/output"
	"gentestx/internal/parser"
	"gentestx/internal/prompt"
	"gentestx/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stage labels attached to completion failures
const (
	StageAnalysis   = "failed to analyze code"
	StageGeneration = "failed to generate test code"
)

// Pipeline runs one test generation at a time:
// analyze -> extract -> build second prompt -> generate -> strip fences -> resolve path -> write.
type Pipeline struct {
	config  *config.Config
	client  completion.Completer
	parser  *parser.AnalysisParser
	namer   *output.Namer
	storage storage.Storage
	logger  *zap.Logger
}

// New creates a new Pipeline. st may be nil when reports should not be kept.
func New(
	cfg *config.Config,
	client completion.Completer,
	analysisParser *parser.AnalysisParser,
	namer *output.Namer,
	st storage.Storage,
	logger *zap.Logger,
) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		config:  cfg,
		client:  client,
		parser:  analysisParser,
		namer:   namer,
		storage: st,
		logger:  logger,
	}
}

// Run reads sourcePath and generates tests for it. The language comes from the
// configured editor language id when set, otherwise from the file extension.
func (p *Pipeline) Run(ctx context.Context, sourcePath string, session Session) (*domain.GenerationReport, error) {
	lang, ok := p.detectLanguage(sourcePath)
	if !ok {
		if session != nil {
			session.Reset()
			session.UpdateStatus(domain.StatusError, 0)
		}
		return nil, &domain.UnsupportedLanguageError{Path: sourcePath, Language: p.config.Flags.Language}
	}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		if session != nil {
			session.Reset()
			session.UpdateStatus(domain.StatusError, 0)
		}
		return nil, fmt.Errorf("read source file: %w", err)
	}

	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}
	return p.Generate(ctx, domain.SourceFile{Path: abs, Language: lang, Content: string(content)}, session)
}

// Generate runs the pipeline for source content that is already in memory.
// Unsupported languages and a missing API key fail before any network call.
func (p *Pipeline) Generate(ctx context.Context, src domain.SourceFile, session Session) (*domain.GenerationReport, error) {
	if session == nil {
		session = NopSession{}
	}
	session.Reset()

	if !isSupported(src.Language) {
		session.UpdateStatus(domain.StatusError, 0)
		return nil, &domain.UnsupportedLanguageError{Path: src.Path, Language: string(src.Language)}
	}
	if err := p.config.Validate(); err != nil {
		session.UpdateStatus(domain.StatusError, 0)
		return nil, err
	}

	start := time.Now()
	framework := prompt.ResolveFramework(p.config.TestFramework, src.Language)
	report := &domain.GenerationReport{
		ID:         uuid.NewString(),
		SourcePath: src.Path,
		Language:   src.Language,
		Framework:  framework,
		Status:     domain.StatusAnalyzing,
		CreatedAt:  start,
	}
	log := p.logger.With(zap.String("run_id", report.ID), zap.String("source", src.Path))

	fail := func(err error) (*domain.GenerationReport, error) {
		session.UpdateStatus(domain.StatusError, 0)
		report.Status = domain.StatusError
		report.Error = err.Error()
		report.Duration = time.Since(start).String()
		p.save(report, log)
		log.Info("generation failed", zap.Error(err))
		return report, err
	}

	session.UpdateFile(src.Path)
	session.UpdateStatus(domain.StatusAnalyzing, 25)

	analysisReq := prompt.AnalysisRequest(src.Content, src.Language)
	analysis, err := p.client.Complete(ctx, analysisReq.System, analysisReq.User)
	if err != nil {
		return fail(withStage(err, StageAnalysis))
	}
	report.Analysis = analysis
	session.UpdateAnalysis(analysis)
	session.UpdateStatus(domain.StatusAnalyzing, 50)

	cases, strategy := p.parser.ParseWithStrategy(analysis)
	report.TestCases = cases
	log.Info("extracted test cases", zap.Int("count", len(cases)), zap.String("strategy", string(strategy)))
	session.UpdateTestCases(cases)
	report.Status = domain.StatusGenerating
	session.UpdateStatus(domain.StatusGenerating, 75)

	generationReq := prompt.GenerationRequest(src.Content, src.Language, cases, framework)
	generated, err := p.client.Complete(ctx, generationReq.System, generationReq.User)
	if err != nil {
		return fail(withStage(err, StageGeneration))
	}
	testCode := prompt.StripFences(generated)
	report.TestCode = testCode
	session.UpdateTestCode(testCode)

	var placement output.Placement
	if p.config.Flags.DryRun {
		placement = p.namer.Plan(src.Path, src.Language, p.config.OutputLocation)
	} else {
		placement = p.namer.Resolve(src.Path, src.Language, p.config.OutputLocation)
	}
	report.OutputPath = placement.Path
	if placement.CreatedDir {
		log.Debug("created test directory", zap.String("dir", placement.Dir))
	}
	if placement.Warning != nil {
		report.Warnings = append(report.Warnings, placement.Warning.Error())
	}

	if !p.config.Flags.DryRun {
		if err := os.WriteFile(placement.Path, []byte(testCode), 0644); err != nil {
			return fail(fmt.Errorf("write test file: %w", err))
		}
	}

	report.Status = domain.StatusSuccess
	report.Duration = time.Since(start).String()
	session.UpdateStatus(domain.StatusSuccess, 100)
	p.save(report, log)
	log.Info("test file generated", zap.String("output", placement.Path), zap.Bool("dry_run", p.config.Flags.DryRun))
	return report, nil
}

func (p *Pipeline) detectLanguage(sourcePath string) (domain.Language, bool) {
	if id := p.config.Flags.Language; id != "" {
		return domain.LanguageFromID(id)
	}
	return domain.LanguageFromPath(sourcePath)
}

func (p *Pipeline) save(report *domain.GenerationReport, log *zap.Logger) {
	if p.storage == nil {
		return
	}
	if err := p.storage.Save(report); err != nil {
		log.Warn("failed to save generation report", zap.Error(err))
	}
}

func withStage(err error, stage string) error {
	var svcErr *domain.ExternalServiceError
	if errors.As(err, &svcErr) {
		svcErr.Stage = stage
		return svcErr
	}
	return fmt.Errorf("%s: %w", stage, err)
}

func isSupported(lang domain.Language) bool {
	for _, l := range domain.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
