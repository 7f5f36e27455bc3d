// Package paths resolves the scenario configuration and output directory
// locations for the rule30 CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultOutputDirName is the CWD-relative directory run artifacts land in
// when nothing overrides it.
const DefaultOutputDirName = "outputs"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "RULE30_CONFIG_DIR"
	EnvOutputDir = "RULE30_OUTPUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration
// directory holding scenario files.
//
// Linux:   $XDG_CONFIG_HOME/rule30 (fallback ~/.config/rule30)
// macOS:   ~/Library/Application Support/rule30
// Windows: %APPDATA%/rule30
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "rule30"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "rule30"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "rule30"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > RULE30_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutputDir returns the output directory following the precedence
// chain: flag > scenario config value > RULE30_OUTPUT_DIR env > $(CWD)/outputs.
//
// The CWD-relative default keeps run artifacts next to where the tool was
// invoked, which is the expected mode for one-off analysis runs.
func ResolveOutputDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvOutputDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultOutputDirName), nil
}
