package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv points storage at a temp dir and returns a valid profile path
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("READYVAULT_DB_PATH", filepath.Join(dir, "db", "readyvault.db"))
	t.Setenv("READYVAULT_CACHE_DIR", filepath.Join(dir, "cache"))
	t.Setenv("READYVAULT_LOG_LEVEL", "error")
	t.Setenv("READYVAULT_LOG_FILE", "")

	path := filepath.Join(dir, "profile.yaml")
	_, err := run(t, "example", path)
	require.NoError(t, err)
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "readyvault", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "compare", "simulate", "validate", "example", "export", "history", "serve", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestVersion(t *testing.T) {
	setupEnv(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "readyvault dev"))
}

func TestExampleAndValidate(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	broken := strings.Replace(string(data), "risk_tolerance: 6", "risk_tolerance: 12", 1)
	badPath := filepath.Join(filepath.Dir(path), "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte(broken), 0o644))

	out, err = run(t, "validate", badPath)
	require.Error(t, err)
	assert.Contains(t, out, "has 1 problem(s)")
	assert.Contains(t, out, "risk tolerance")
}

func TestAnalyze(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "analyze", path, "--method", "basic")
	require.NoError(t, err)
	assert.Contains(t, out, "RETIREMENT READINESS REPORT")
	assert.Contains(t, out, "BASIC (70-80% RULE)")
	assert.NotContains(t, out, "ADVANCED (MONTE CARLO)")

	out, err = run(t, "analyze", path, "--format", "json", "--seed", "5", "--iterations", "100")
	require.NoError(t, err)
	assert.Contains(t, out, `"method": "advanced"`)
	assert.Contains(t, out, `"seed": 5`)

	_, err = run(t, "analyze", path, "--format", "pdf")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "analyze", path, "--method", "guess")
	assert.ErrorContains(t, err, "unknown analysis method")

	_, err = run(t, "analyze", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAnalyzeSaveAndHistory(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "history", "--user", "alex")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored analyses for alex")

	_, err = run(t, "analyze", path, "--method", "basic,intermediate", "--save", "--user", "alex")
	require.NoError(t, err)

	out, err = run(t, "history", "--user", "alex")
	require.NoError(t, err)
	assert.Contains(t, out, "basic")
	assert.Contains(t, out, "intermediate")

	out, err = run(t, "history", "--user", "alex", "--method", "basic")
	require.NoError(t, err)
	assert.NotContains(t, out, "intermediate")

	out, err = run(t, "history", "--user", "alex", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared for alex")

	out, err = run(t, "history", "--user", "alex")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored analyses")
}

func TestCompare(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "compare", path, "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "RETIREMENT READINESS COMPARISON")
	assert.Contains(t, out, "Profile: "+path)
	assert.Contains(t, out, "COMPARISON TO BASE")

	out, err = run(t, "compare", path, "--methods", "basic,intermediate", "--format", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "basic: ")
	assert.Contains(t, out, " | intermediate: ")

	out, err = run(t, "compare", path, "--methods", "intermediate", "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Method,Type"))

	_, err = run(t, "compare", path, "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestSimulate(t *testing.T) {
	path := setupEnv(t)

	out, err := run(t, "simulate", path, "--seed", "7", "-n", "200", "-y", "25", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "MONTE CARLO SIMULATION")
	assert.Contains(t, out, "Trials:                200 (seed 7)")
	assert.Contains(t, out, "Horizon:               25 years")
	assert.Contains(t, out, "Recommendations:")

	// the worker count does not change a seeded run
	again, err := run(t, "simulate", path, "--seed", "7", "-n", "200", "-y", "25", "--workers", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestExport(t *testing.T) {
	path := setupEnv(t)
	outDir := t.TempDir()

	var opened string
	orig := openInBrowser
	openInBrowser = func(p string) error {
		opened = p
		return nil
	}
	t.Cleanup(func() { openInBrowser = orig })

	out, err := run(t, "export", path, "--format", "csv", "--output-dir", outDir, "--method", "basic")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")
	assert.Empty(t, opened)

	out, err = run(t, "export", path, "--output-dir", outDir, "--seed", "1", "--open")
	require.NoError(t, err)
	assert.Contains(t, out, ".html")
	assert.True(t, strings.HasSuffix(opened, ".html"))

	files, err := filepath.Glob(filepath.Join(outDir, "retirement_report_*"))
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}
