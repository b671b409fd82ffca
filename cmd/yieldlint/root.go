// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/lint"
	"fillmore-labs.com/yieldcheck/internal/report"
	"fillmore-labs.com/yieldcheck/internal/settings"
)

// Exit codes of the command.
const (
	exitOK    = 0
	exitFound = 1
	exitError = 2
)

// errFound signals that diagnostics were reported.
var errFound = errors.New("diagnostics found")

// rootFlags holds the flags not handled by [settings.Load].
type rootFlags struct {
	configFile string
	verbose    bool
}

// execute runs the command line and returns the exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return exitOK

	case errors.Is(err, errFound):
		return exitFound

	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

		return exitError
	}
}

func newRootCommand() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "yieldlint [paths...]",
		Short: "Report generator functions without yield",
		Long: `Yieldlint checks JavaScript and TypeScript files for generator functions
that never yield. Directories are searched recursively, skipping node_modules
and hidden directories. Without arguments the current directory is checked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &f)
		},
	}

	d := config.DefaultOptions()

	flags := cmd.Flags()
	flags.StringVar(&f.configFile, "config", "", "config file (default is .yieldcheck.yaml in the working or home directory)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	flags.String("format", string(report.FormatText), "output format (text or json)")
	flags.Bool("generated", d.Behavior.Enabled(config.IncludeGenerated), "check generated files")
	flags.Bool("typescript", d.Behavior.Enabled(config.TypeScript), "check TypeScript files")
	flags.Bool("nolint", d.Behavior.Enabled(config.HonorNoLint), "honor nolint:yieldcheck comments")
	flags.Int("max-file-size", d.MaxFileSize, "skip files larger than this many bytes (0 for no limit)")
	flags.Int("concurrency", d.Concurrency, "number of files checked in parallel (0 for GOMAXPROCS)")
	flags.Bool("no-color", false, "disable colored output")

	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runLint(cmd *cobra.Command, args []string, f *rootFlags) error {
	s, err := settings.Load(f.configFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	ctx := cmd.Context()

	if len(args) == 0 {
		args = []string{"."}
	}

	l := lint.New(s.Options(), logger)

	files, err := l.Collect(args)
	if err != nil {
		return err
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Checking files", slog.Int("count", len(files)))

	diagnostics, lintErr := l.LintFiles(ctx, files)

	p := report.NewPrinter(cmd.OutOrStdout(), s.OutputFormat(), s.Color && !color.NoColor)
	if err := p.Print(diagnostics); err != nil {
		return err
	}

	if lintErr != nil {
		return lintErr
	}

	if len(diagnostics) > 0 {
		return errFound
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
