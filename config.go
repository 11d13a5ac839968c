package fuzzprop

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// ErrConfigFileNotFound indicates an explicitly requested harness config
// file does not exist.
var ErrConfigFileNotFound = errors.New("fuzzprop: config file not found")

// ErrConfigInvalid indicates a harness config file could not be parsed.
var ErrConfigInvalid = errors.New("fuzzprop: invalid config file")

// ConfigFileName is the default harness config file name, looked for in
// the working directory when no explicit path is given.
const ConfigFileName = ".fuzzprop.hujson"

// HarnessConfig holds the ambient settings [RunHarness] reads before a
// run: which test to exercise when none is named on the command line,
// whether to speak AFL persistent-mode framing, and where to drop crash
// artifacts in single-shot mode. None of it affects generator semantics
// - a HarnessConfig only changes how the harness dispatches, never what
// a given byte buffer decodes to.
type HarnessConfig struct {
	DefaultTest string `json:"default_test,omitempty"`
	Persistent  bool   `json:"persistent,omitempty"`
	CrashDir    string `json:"crash_dir,omitempty"`
}

// getGlobalConfigPath returns the path to the global, per-user harness
// config file: $XDG_CONFIG_HOME/fuzzprop/config.hujson if set, otherwise
// ~/.config/fuzzprop/config.hujson. Returns "" if neither can be
// determined. Mirrors the teacher's getGlobalConfigPath, substituting
// this package's env map[string]string for its env []string.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "fuzzprop", "config.hujson")
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "fuzzprop", "config.hujson")
	}

	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, ".config", "fuzzprop", "config.hujson")
	}

	return ""
}

// LoadHarnessConfig loads a HarnessConfig with the same precedence chain
// as the teacher's LoadConfig (highest wins): built-in defaults, the
// global per-user config file if one can be located, the project config
// file at workDir/[ConfigFileName] if present, then an explicit
// configPath if given. CLI flags are applied by the caller
// ([RunHarness]) after LoadHarnessConfig returns, exactly as
// internal/cli/run.go layers --ticket-dir over the loaded config.
func LoadHarnessConfig(workDir, configPath string, env map[string]string) (HarnessConfig, error) {
	cfg := HarnessConfig{CrashDir: "fuzzprop-crashes"}

	if globalPath := getGlobalConfigPath(env); globalPath != "" {
		if loaded, err := loadConfigFile(globalPath, false); err != nil {
			return HarnessConfig{}, err
		} else if loaded != nil {
			cfg = mergeHarnessConfig(cfg, *loaded)
		}
	}

	projectPath := filepath.Join(workDir, ConfigFileName)
	if loaded, err := loadConfigFile(projectPath, false); err != nil {
		return HarnessConfig{}, err
	} else if loaded != nil {
		cfg = mergeHarnessConfig(cfg, *loaded)
	}

	if configPath != "" {
		explicit := configPath
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(workDir, explicit)
		}

		loaded, err := loadConfigFile(explicit, true)
		if err != nil {
			return HarnessConfig{}, err
		}

		cfg = mergeHarnessConfig(cfg, *loaded)
	}

	return cfg, nil
}

func loadConfigFile(path string, mustExist bool) (*HarnessConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-controlled by design
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return nil, nil
		}

		return nil, fmt.Errorf("fuzzprop: reading %s: %w", path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	var cfg HarnessConfig
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return &cfg, nil
}

func mergeHarnessConfig(base, override HarnessConfig) HarnessConfig {
	if override.DefaultTest != "" {
		base.DefaultTest = override.DefaultTest
	}

	if override.Persistent {
		base.Persistent = true
	}

	if override.CrashDir != "" {
		base.CrashDir = override.CrashDir
	}

	return base
}
