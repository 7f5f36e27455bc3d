// Package integration provides CLI integration tests for rule30.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// rule30Bin is the path to the built rule30 binary.
	rule30Bin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and
// output directory.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	OutputDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build rule30: %v", buildErr)
	}
	if rule30Bin == "" {
		t.Fatal("rule30 binary not built (rule30Bin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	outputDir := filepath.Join(tempDir, "outputs")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		OutputDir: outputDir,
	}
}

// WriteScenario writes a scenario YAML file into the config directory.
func (e *TestEnv) WriteScenario(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.ConfigDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write scenario: %v", err)
	}
	return path
}

// CmdResult holds the result of a rule30 command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunRule30 executes the rule30 CLI with the given arguments.
func (e *TestEnv) RunRule30(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--output-dir", e.OutputDir}, args...)
	cmd := exec.Command(rule30Bin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run rule30: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunRule30 executes the rule30 CLI and fails the test on a non-zero exit.
func (e *TestEnv) MustRunRule30(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunRule30(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("rule30 %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
