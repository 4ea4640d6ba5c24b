/*
File    : tron/config/config.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package config loads the interpreter's small set of user preferences
// from a .tronrc.yaml file in the current working directory, falling back
// to built-in defaults when the file is absent or partially specified.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const fileName = ".tronrc.yaml"

const (
	defaultPointer      = " ➤ "
	defaultMaxCallDepth = 1000
)

// Config holds the preferences the REPL and file-execution driver apply
// to a fresh Evaluator before running a program.
type Config struct {
	// PrintPointer prefixes every `print` statement's output line.
	PrintPointer string `yaml:"print_pointer"`

	// ImportPaths are directories searched, in order, for an import
	// statement's path when it isn't found relative to the cwd.
	ImportPaths []string `yaml:"import_paths"`

	// MaxCallDepth caps nested user-function calls. Zero means
	// unbounded.
	MaxCallDepth int `yaml:"max_call_depth"`
}

// Default returns the built-in preferences used when no .tronrc.yaml is
// present.
func Default() *Config {
	return &Config{
		PrintPointer: defaultPointer,
		ImportPaths:  nil,
		MaxCallDepth: defaultMaxCallDepth,
	}
}

// Load reads .tronrc.yaml from the current working directory. A missing
// file is not an error: Load returns the built-in defaults. A present but
// malformed file is an error. Fields the file omits keep their default
// value.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.PrintPointer == "" {
		cfg.PrintPointer = defaultPointer
	}
	return cfg, nil
}
