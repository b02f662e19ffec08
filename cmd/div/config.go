// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/div/internal/errors"
)

// Output formats accepted in the config file.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the optional YAML configuration file.
//
// Example:
//
//	output: json
//	no_color: true
//	metrics_textfile: /var/lib/node_exporter/textfile/div.prom
type Config struct {
	Output          string `yaml:"output"`
	NoColor         bool   `yaml:"no_color"`
	MetricsTextfile string `yaml:"metrics_textfile"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{Output: OutputText}
}

// LoadConfig reads the config file at path.
//
// An empty path returns DefaultConfig. Unknown keys are rejected so typos
// surface instead of being silently ignored.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cause := err.Error()
		if stderrors.Is(err, fs.ErrNotExist) {
			cause = fmt.Sprintf("The file %s does not exist", path)
		}
		return nil, errors.NewConfigError(
			"Cannot load configuration",
			cause,
			"Check the --config flag or the DIV_CONFIG environment variable",
			err,
		)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.NewConfigError(
			"Invalid configuration",
			fmt.Sprintf("%s is not valid: %v", path, err),
			"Supported keys are output, no_color and metrics_textfile",
			err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.NewConfigError(
			"Invalid configuration",
			err.Error(),
			fmt.Sprintf("Set output to %q or %q in %s", OutputText, OutputJSON, path),
			err,
		)
	}
	return cfg, nil
}

// Validate checks field values that YAML decoding alone cannot.
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputText, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
}
