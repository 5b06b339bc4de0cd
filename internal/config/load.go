package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SourceBuiltin names the configuration source when no file was found.
const SourceBuiltin = "built-in"

// LoadOptions controls config file resolution.
type LoadOptions struct {
	// ExplicitPath is the --config flag value. When set the file must exist.
	ExplicitPath string
	// WorkDir is where the project file search starts. Defaults to the
	// process working directory.
	WorkDir string
	// Logger receives resolution traces. Nil means no tracing.
	Logger *zap.Logger
}

// Loaded is a resolved, validated configuration and where it came from.
type Loaded struct {
	Config *Config
	Source string
}

// Load resolves, parses, overlays the environment and validates the config.
//
// Resolution order (first hit wins):
//  1. ExplicitPath
//  2. .forkcheck.yml in WorkDir or a parent, stopping at the repository top
//  3. config.yml in Dir()
//  4. built-in defaults
func Load(opts LoadOptions) (*Loaded, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	source := SourceBuiltin
	if path != "" {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, readErr)
		}
		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		source = path
	}

	applied := ApplyEnv(cfg)
	logger.Debug("config resolved",
		zap.String("source", source),
		zap.Strings("env_overrides", applied))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &Loaded{Config: cfg, Source: source}, nil
}

// resolvePath returns the config file to read, or "" for built-in defaults.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	if found := FindProjectFile(workDir); found != "" {
		return found, nil
	}

	if global := GlobalPath(); global != "" && fileExists(global) {
		return global, nil
	}
	return "", nil
}

// FindProjectFile walks from start toward the filesystem root looking for
// .forkcheck.yml. The walk stops after the first directory that holds a .git
// entry, so a parent project's file never leaks into a nested repository.
func FindProjectFile(start string) string {
	current, err := filepath.Abs(start)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(current, ProjectFileName)
		if fileExists(candidate) {
			return candidate
		}

		if _, statErr := os.Stat(filepath.Join(current, ".git")); statErr == nil {
			return ""
		}

		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// Save writes cfg as YAML to path, creating parent directories.
// Refuses to overwrite an existing file unless force is set.
func Save(path string, cfg *Config, force bool) error {
	if !force && fileExists(path) {
		return fmt.Errorf("%s: %w", path, os.ErrExist)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsExist reports whether err came from Save refusing to overwrite.
func IsExist(err error) bool {
	return errors.Is(err, os.ErrExist)
}
