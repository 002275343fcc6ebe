package output

import (
	"os"
	"path/filepath"
	"strings"

	"gentestx/internal/config"
	"gentestx/internal/domain"

	"go.uber.org/zap"
)

// Placement is where a generated test file goes
type Placement struct {
	Path       string // Full path of the test file
	Dir        string // Directory part of Path
	CreatedDir bool   // A tests directory was created for this placement
	Warning    error  // Non-fatal problem, e.g. *domain.DirectoryCreationError
}

// Namer computes test file names and placement
type Namer struct {
	workspaceRoot string
	logger        *zap.Logger
}

// NewNamer creates a new Namer. An empty workspaceRoot skips the workspace-level
// test directory candidates.
func NewNamer(workspaceRoot string, logger *zap.Logger) *Namer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Namer{workspaceRoot: workspaceRoot, logger: logger}
}

// TestFileName derives the test file name from the source file name:
// Python gets test_<name>.<ext>, Java <name>Test.<ext>, everything else <name>.test.<ext>.
func TestFileName(sourcePath string, lang domain.Language) string {
	ext := filepath.Ext(sourcePath)
	name := strings.TrimSuffix(filepath.Base(sourcePath), ext)

	switch lang {
	case domain.LanguagePython:
		return "test_" + name + ext
	case domain.LanguageJava:
		return name + "Test" + ext
	default:
		return name + ".test" + ext
	}
}

// Candidates returns the ordered test directories probed for sourcePath.
func (n *Namer) Candidates(sourcePath string) []string {
	sourceDir := filepath.Dir(sourcePath)
	parentDir := filepath.Dir(sourceDir)

	dirs := []string{
		filepath.Join(sourceDir, "tests"),
		filepath.Join(sourceDir, "test"),
		filepath.Join(sourceDir, "__tests__"),
		filepath.Join(parentDir, "tests"),
		filepath.Join(parentDir, "test"),
		filepath.Join(parentDir, "__tests__"),
	}
	if n.workspaceRoot != "" {
		dirs = append(dirs,
			filepath.Join(n.workspaceRoot, "tests"),
			filepath.Join(n.workspaceRoot, "test"),
		)
	}
	return dirs
}

// Resolve computes the output path. With the sameDirectory policy the test file
// sits next to the source. Otherwise the first existing candidate directory is
// used; if none exists a tests directory is created next to the source, and if
// that fails the source directory is used and Warning is set.
func (n *Namer) Resolve(sourcePath string, lang domain.Language, policy string) Placement {
	return n.place(sourcePath, lang, policy, true)
}

// Plan is Resolve without side effects: when no candidate exists it returns
// the tests directory next to the source without creating it.
func (n *Namer) Plan(sourcePath string, lang domain.Language, policy string) Placement {
	return n.place(sourcePath, lang, policy, false)
}

func (n *Namer) place(sourcePath string, lang domain.Language, policy string, create bool) Placement {
	fileName := TestFileName(sourcePath, lang)
	sourceDir := filepath.Dir(sourcePath)

	if policy == config.OutputLocationSameDirectory {
		return Placement{Path: filepath.Join(sourceDir, fileName), Dir: sourceDir}
	}

	for _, dir := range n.Candidates(sourcePath) {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		return Placement{Path: filepath.Join(dir, fileName), Dir: dir}
	}

	testDir := filepath.Join(sourceDir, "tests")
	if !create {
		return Placement{Path: filepath.Join(testDir, fileName), Dir: testDir}
	}
	if err := os.MkdirAll(testDir, 0755); err != nil {
		warning := &domain.DirectoryCreationError{Dir: testDir, Err: err}
		n.logger.Warn("falling back to source directory", zap.Error(warning))
		return Placement{Path: filepath.Join(sourceDir, fileName), Dir: sourceDir, Warning: warning}
	}
	return Placement{Path: filepath.Join(testDir, fileName), Dir: testDir, CreatedDir: true}
}

// ComputeOutputPath is Resolve reduced to the path.
func (n *Namer) ComputeOutputPath(sourcePath string, lang domain.Language, policy string) string {
	return n.Resolve(sourcePath, lang, policy).Path
}
