// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/kraklabs/div/internal/errors"
	"github.com/kraklabs/div/internal/output"
	"github.com/kraklabs/div/internal/ui"
	"github.com/kraklabs/div/pkg/division"
)

const inputPrompt = "Enter dividend and divisor: "

const usageFix = "Provide two integers, dividend then divisor, for example: echo '10 2' | div"

// run executes one invocation and returns the process exit code.
//
// Flow: parse flags, load config, read operands, divide, print. A zero
// divisor or an overflowing quotient is a handled outcome and exits 0; only
// unreadable input, bad arguments and config problems exit non-zero.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	start := time.Now()

	globals, err := parseFlags(args, stderr)
	// Flags parsed before a bad one still apply, so --no-color covers usage errors.
	ui.InitColors(globals.NoColor)
	if stderrors.Is(err, flag.ErrHelp) {
		return errors.ExitSuccess
	}
	if err != nil {
		return errors.Report(stderr, errors.NewInputError(
			"Invalid arguments",
			err.Error(),
			"Run 'div --help' for usage",
			err,
		), false)
	}

	if globals.ShowVersion {
		fmt.Fprintf(stdout, "div version %s\n", version)
		fmt.Fprintf(stdout, "commit: %s\n", commit)
		fmt.Fprintf(stdout, "built: %s\n", date)
		return errors.ExitSuccess
	}

	cfg, err := LoadConfig(globals.ConfigPath)
	if err != nil {
		return errors.Report(stderr, err, globals.JSON)
	}
	globals.applyConfig(cfg)
	ui.InitColors(globals.NoColor)

	logLevel := slog.LevelInfo
	if globals.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	metrics := newRunMetrics()
	code := divide(stdin, stdout, stderr, globals, logger, metrics)
	metrics.finish(start)

	if globals.MetricsTextfile != "" {
		if err := metrics.writeTextfile(globals.MetricsTextfile); err != nil {
			logger.Warn("metrics export failed", "path", globals.MetricsTextfile, "err", err)
		} else {
			logger.Debug("metrics exported", "path", globals.MetricsTextfile)
		}
	}
	return code
}

// divide reads the operands, performs the division and writes the outcome.
func divide(stdin io.Reader, stdout, stderr io.Writer, globals GlobalFlags, logger *slog.Logger, metrics *runMetrics) int {
	if !globals.Quiet && !globals.JSON && isTerminal(stdin) {
		ui.Prompt(stderr, inputPrompt)
	}

	ops, err := division.ReadOperands(stdin)
	if err != nil {
		metrics.recordInputError()
		logger.Debug("reading operands failed", "err", err)
		return errors.Report(stderr, operandError(err), globals.JSON)
	}
	logger.Debug("operands read", "dividend", ops.Dividend, "divisor", ops.Divisor)

	q, err := ops.Divide()
	metrics.recordDivision(err)
	if err != nil {
		logger.Debug("division failed", "err", err)
	} else {
		logger.Debug("division complete", "quotient", q)
	}

	if globals.JSON {
		if jerr := output.JSONCompactTo(stdout, output.NewOutcome(ops, q, err)); jerr != nil {
			return errors.Report(stderr, errors.NewInternalError(
				"Cannot write result",
				jerr.Error(),
				"",
				jerr,
			), true)
		}
		return errors.ExitSuccess
	}

	if err != nil {
		fmt.Fprintln(stdout, ui.FailureLine(division.Message(err)))
	} else {
		fmt.Fprintln(stdout, ui.ResultLine(q))
	}
	return errors.ExitSuccess
}

// operandError converts a ReadOperands failure into a UserError.
func operandError(err error) *errors.UserError {
	var pe *division.ParseError
	switch {
	case stderrors.As(err, &pe):
		cause := fmt.Sprintf("%q is not an integer", pe.Token)
		if stderrors.Is(pe.Err, strconv.ErrRange) {
			cause = fmt.Sprintf("%q does not fit in a %d-bit integer", pe.Token, strconv.IntSize)
			if pe.Token == "" {
				cause = fmt.Sprintf("The %s is too long to fit in a %d-bit integer", pe.Operand, strconv.IntSize)
			}
		}
		return errors.NewInputError("Invalid "+pe.Operand, cause, usageFix, err)

	case stderrors.Is(err, division.ErrMissingOperand):
		return errors.NewInputError(
			"Missing operand",
			fmt.Sprintf("Input ended early: %v", err),
			usageFix,
			err,
		)

	default:
		return errors.NewInternalError(
			"Cannot read input",
			err.Error(),
			"Check that standard input is readable",
			err,
		)
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
