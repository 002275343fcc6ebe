package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"gentestx/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{
		"src/calc.js",
		"src/calc.test.js",
		"src/widget.spec.tsx",
		"src/api/client.ts",
		"lib/util.py",
		"lib/test_util.py",
		"java/Calc.java",
		"java/CalcTest.java",
		"node_modules/pkg/index.js",
		"vendor/lib.py",
		".git/hooks/pre-commit.js",
		"README.md",
		"main.go",
	}
	for _, file := range files {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"vendor", "node_modules"})

	t.Run("finds supported sources only", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var rel []string
		for _, r := range results {
			p, _ := filepath.Rel(tmpDir, r)
			rel = append(rel, filepath.ToSlash(p))
		}
		expected := []string{"java/Calc.java", "lib/util.py", "src/api/client.ts", "src/calc.js"}
		if diff := cmp.Diff(expected, rel); diff != "" {
			t.Errorf("unexpected sources (-want +got):\n%s", diff)
		}
	})

	t.Run("hidden root is still scanned", func(t *testing.T) {
		hidden := filepath.Join(tmpDir, ".hidden")
		os.MkdirAll(hidden, 0755)
		os.WriteFile(filepath.Join(hidden, "a.js"), []byte("x"), 0644)

		results, err := scanner.Scan(hidden)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 source, got %d", len(results))
		}
	})

	t.Run("returns error for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if err == nil {
			t.Error("expected error for non-existent directory")
		}
	})

	t.Run("returns error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "src/calc.js"))
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		path     string
		lang     domain.Language
		expected bool
	}{
		{"calc.test.js", domain.LanguageJavaScript, true},
		{"calc.spec.ts", domain.LanguageTypeScript, true},
		{"calc.js", domain.LanguageJavaScript, false},
		{"latest.js", domain.LanguageJavaScript, false},
		{"test_calc.py", domain.LanguagePython, true},
		{"calc_test.py", domain.LanguagePython, true},
		{"contest.py", domain.LanguagePython, false},
		{"CalcTest.java", domain.LanguageJava, true},
		{"CalcTests.java", domain.LanguageJava, true},
		{"Calc.java", domain.LanguageJava, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsTestFile(tt.path, tt.lang); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
