package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gentestx/internal/domain"
)

// Scanner finds source files that tests can be generated for
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan walks root and returns every supported source file in lexical order.
// Generated test files are left out.
func (s *Scanner) Scan(root string) ([]string, error) {
	var sources []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && s.SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsCandidate(path) {
			sources = append(sources, path)
		}
		return nil
	})

	return sources, err
}

// SkipDir reports whether a directory with this name is never scanned
func (s *Scanner) SkipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	return s.skipDirs[name]
}

// IsCandidate reports whether path is a supported source file that is not
// itself a test.
func IsCandidate(path string) bool {
	lang, ok := domain.LanguageFromPath(path)
	if !ok {
		return false
	}
	return !IsTestFile(path, lang)
}

// IsTestFile reports whether the file name follows a test naming convention
func IsTestFile(path string, lang domain.Language) bool {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	switch lang {
	case domain.LanguagePython:
		return strings.HasPrefix(stem, "test_") || strings.HasSuffix(stem, "_test")
	case domain.LanguageJava:
		return strings.HasSuffix(stem, "Test") || strings.HasSuffix(stem, "Tests")
	default:
		return strings.HasSuffix(stem, ".test") || strings.HasSuffix(stem, ".spec")
	}
}
