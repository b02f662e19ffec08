// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// GlobalFlags holds the resolved command-line options.
type GlobalFlags struct {
	ShowVersion     bool
	JSON            bool
	NoColor         bool
	Quiet           bool
	Debug           bool
	ConfigPath      string
	MetricsTextfile string

	// changed records which flags were set explicitly, so config values
	// only fill in what the user did not pass.
	changed map[string]bool
}

// parseFlags parses args into GlobalFlags.
//
// It returns flag.ErrHelp after printing usage for -h/--help.
func parseFlags(args []string, stderr io.Writer) (GlobalFlags, error) {
	var g GlobalFlags

	fs := flag.NewFlagSet("div", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&g.ShowVersion, "version", false, "Show version and exit")
	fs.BoolVar(&g.JSON, "json", false, "Write the outcome as a JSON object")
	fs.BoolVar(&g.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&g.Quiet, "quiet", "q", false, "Do not prompt for input on a terminal")
	fs.BoolVar(&g.Debug, "debug", false, "Enable debug logging on stderr")
	fs.StringVar(&g.ConfigPath, "config", os.Getenv("DIV_CONFIG"), "Path to a YAML config file (default: $DIV_CONFIG)")
	fs.StringVar(&g.MetricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the run")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `div - integer division

Reads two integers (dividend, then divisor) from standard input and prints
the quotient, truncated toward zero.

Usage:
  div [options] < input

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  echo '10 2' | div                    Result: 5
  echo '-7 2' | div                    Result: -3
  echo '5 0' | div                     Error: Division by zero!
  echo '7 2' | div --json              {"dividend":7,"divisor":2,"quotient":3}
  div --metrics-textfile div.prom      Export run metrics for node_exporter

Exit codes:
  0   Result printed, or a division failure was reported
  1   Invalid configuration
  4   Invalid input or arguments
  10  Internal error
`)
	}

	if err := fs.Parse(args); err != nil {
		return g, err
	}
	if fs.NArg() > 0 {
		return g, fmt.Errorf("unexpected argument %q: operands are read from standard input", fs.Arg(0))
	}

	g.changed = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		g.changed[f.Name] = true
	})
	return g, nil
}

// applyConfig fills options from cfg that were not set on the command line.
func (g *GlobalFlags) applyConfig(cfg *Config) {
	if !g.changed["json"] && cfg.Output == OutputJSON {
		g.JSON = true
	}
	if !g.changed["no-color"] && cfg.NoColor {
		g.NoColor = true
	}
	if !g.changed["metrics-textfile"] && cfg.MetricsTextfile != "" {
		g.MetricsTextfile = cfg.MetricsTextfile
	}
}
