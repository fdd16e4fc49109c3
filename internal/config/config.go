// Package config holds the small set of constants and the optional
// user-level configuration file shared by cmd/l.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Version is the current release version, set at build time via
// -ldflags "-X github.com/lclang/l/internal/config.Version=...".
var Version = "0.1.0"

// TraceBuiltinName is the surface name the prelude binds the trace native
// to; kept here (rather than inline in the builtins package) so the CLI
// can refer to it without importing builtins just for a string constant.
const TraceBuiltinName = "trace"

// DefaultEvaluator is the evaluator cmd/l selects when --evaluator is not
// given.
const DefaultEvaluator = "pool"

// File is the user-level CLI configuration, loaded from ConfigPath.
type File struct {
	// Evaluator overrides DefaultEvaluator when set.
	Evaluator string `yaml:"evaluator"`
	// CheckAgreement runs both evaluators and reports any divergence.
	CheckAgreement bool `yaml:"check_agreement"`
}

// ConfigPath returns ~/.l/config.yaml, or "" if the home directory cannot
// be determined.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".l", "config.yaml")
}

// Load reads and parses the config file at ConfigPath. A missing file is
// not an error: it returns the zero File.
func Load() (File, error) {
	path := ConfigPath()
	if path == "" {
		return File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, err
	}
	return f, nil
}
