package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gentestx/internal/cli"
	"gentestx/internal/config"
	"gentestx/internal/domain"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer answers the analysis call, then the generation call.
func completionServer(t *testing.T) *httptest.Server {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls%2 == 1 {
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Test Case 1: Description: adds Function: add Input: 1, 2 Expected: 3 Scenario: normal"}}]}`))
			return
		}
		w.Write([]byte("{\"choices\":[{\"message\":{\"role\":\"assistant\",\"content\":\"```js\\ntest('adds', () => {});\\n```\"}}]}"))
	}))
	t.Cleanup(server.Close)
	return server
}

func newRoot(cfg *config.Config) (*cobra.Command, *Commands) {
	root := &cobra.Command{Use: "gentestx", SilenceUsage: true, SilenceErrors: true}
	var flags cli.Flags
	cmds := NewCommands(cfg)
	cmds.Register(root, &flags)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root, cmds
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvAPIKey, config.EnvGroqAPIKey, config.EnvOutputLocation, config.EnvTestFramework, config.EnvEndpoint, config.EnvModel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestGenerate_WritesTestFile(t *testing.T) {
	clearEnv(t)
	server := completionServer(t)
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	source := filepath.Join(dir, "calc.js")
	require.NoError(t, os.WriteFile(source, []byte("function add(a, b) { return a + b; }"), 0644))

	root, cmds := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "test-key", source})
	require.NoError(t, root.ExecuteContext(context.Background()))

	written, err := os.ReadFile(filepath.Join(dir, "calc.test.js"))
	require.NoError(t, err)
	assert.Equal(t, "test('adds', () => {});", string(written))

	report, err := cmds.deps.Storage.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, report.Status)
	require.Len(t, report.TestCases, 1)
	assert.Equal(t, "add", report.TestCases[0].FunctionToTest)
}

func TestGenerate_DirectoryWithFilter(t *testing.T) {
	clearEnv(t)
	server := completionServer(t)
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	for _, name := range []string{"user.py", "order.py", "test_user.py"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("def f(): pass"), 0644))
	}

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "-w", dir, "-k", "test-key", "--filter", "*user*", dir})
	require.NoError(t, root.Execute())

	written, err := os.ReadFile(filepath.Join(dir, "test_user.py"))
	require.NoError(t, err)
	assert.Equal(t, "test('adds', () => {});", string(written), "existing test file is replaced")
	_, err = os.Stat(filepath.Join(dir, "test_order.py"))
	assert.True(t, os.IsNotExist(err), "filtered file should not get a test")
}

func TestGenerate_FailsClosedWithoutKey(t *testing.T) {
	clearEnv(t)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ }))
	defer server.Close()
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	source := filepath.Join(dir, "calc.ts")
	require.NoError(t, os.WriteFile(source, []byte("export {}"), 0644))

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, source})
	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.Zero(t, requests)
}

func TestGenerate_DryRunDoesNotWrite(t *testing.T) {
	clearEnv(t)
	server := completionServer(t)
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	source := filepath.Join(dir, "Calc.java")
	require.NoError(t, os.WriteFile(source, []byte("class Calc {}"), 0644))

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "k", "--dry-run", source})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "CalcTest.java"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_UnsupportedFileCountsAsFailure(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	source := filepath.Join(dir, "main.rb")
	require.NoError(t, os.WriteFile(source, []byte("puts 1"), 0644))

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "k", source})
	err := root.Execute()

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "1 of 1 file(s) failed"))
}

func TestShow_WithoutReport(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"show", "--workspace", dir})
	assert.NoError(t, root.Execute())
}

func TestLanguages_NeedsNoConfig(t *testing.T) {
	clearEnv(t)
	root, _ := newRoot(config.New())
	root.SetArgs([]string{"languages"})
	assert.NoError(t, root.Execute())
}

func TestGenerate_FailingRunFlushesLogs(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream unavailable"}}`))
	}))
	defer server.Close()
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	source := filepath.Join(dir, "calc.js")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))
	logFile := filepath.Join(t.TempDir(), "gentestx.log")

	root, cmds := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "k", "--verbose", "--log-file", logFile, source})
	require.Error(t, root.Execute())

	assert.Nil(t, cmds.deps.Logger, "logger should be closed after a failed run")
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "upstream unavailable")
}

func TestGenerate_LanguageRejectedForDirectories(t *testing.T) {
	clearEnv(t)
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ }))
	defer server.Close()
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "calc.js"), []byte("x"), 0644))

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "k", "--language", "python", dir})
	err := root.Execute()

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "language", cfgErr.Field)
	assert.Zero(t, requests)
	_, statErr := os.Stat(filepath.Join(dir, "test_calc.js"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_LanguageAppliesToNamedFile(t *testing.T) {
	clearEnv(t)
	server := completionServer(t)
	t.Setenv(config.EnvEndpoint, server.URL)

	dir := t.TempDir()
	source := filepath.Join(dir, "widget.txt")
	require.NoError(t, os.WriteFile(source, []byte("export const w = 1;"), 0644))

	root, _ := newRoot(config.New())
	root.SetArgs([]string{"generate", "--workspace", dir, "--api-key", "k", "--language", "typescriptreact", source})
	require.NoError(t, root.Execute())

	_, err := os.Stat(filepath.Join(dir, "widget.test.txt"))
	assert.NoError(t, err)
}
