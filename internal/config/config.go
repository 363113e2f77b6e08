// Package config loads project-level settings for a Smython execution
// from an optional `.smython.yaml`, layered over built-in defaults and
// overridden by CLI flags, generalizing the teacher's internal/ext
// YAML config for its own extension manifest into a settings file for
// this interpreter.
package config

import (
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config holds the project-level settings: where to look for importable
// `.smy` modules, a maximum call depth, and switches for the curses and
// random virtual modules. Only ModulePaths is read by the runtime (its
// first entry is the module directory); MaxCallDepth, EnableCurses and
// EnableRandom are loaded and merged but not consulted, so call depth
// is not limited and every virtual module is always registered.
type Config struct {
	ModulePaths  []string `yaml:"module_paths"`
	MaxCallDepth int      `yaml:"max_call_depth"`
	EnableCurses *bool    `yaml:"enable_curses"`
	EnableRandom *bool    `yaml:"enable_random"`
}

// Default returns the built-in configuration used when no
// `.smython.yaml` is found and no flags override it.
func Default() Config {
	t := true
	return Config{
		ModulePaths:  []string{"."},
		MaxCallDepth: 1000,
		EnableCurses: &t,
		EnableRandom: &t,
	}
}

// FileName is the settings file this package searches for.
const FileName = ".smython.yaml"

// Load walks up from dir looking for FileName, merges it over
// Default() (the file takes priority on any field it sets), and
// returns the result. A missing file is not an error; it simply means
// the defaults apply.
func Load(dir string) (Config, error) {
	cfg := Default()
	path, err := findUp(dir, FileName)
	if err != nil || path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var fromFile Config
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return cfg, err
	}
	if err := mergo.Merge(&cfg, fromFile, mergo.WithOverride); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// findUp searches dir and its ancestors for name, returning "" if none
// is found by the filesystem root.
func findUp(dir, name string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ApplyFlags layers CLI-flag overrides (highest priority) onto cfg.
// Only non-zero-value fields in overrides are applied.
func ApplyFlags(cfg Config, overrides Config) Config {
	if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
		return cfg
	}
	return cfg
}
