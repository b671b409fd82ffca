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

// Package lint runs yieldcheck rules over source files.
package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/generator"
	"fillmore-labs.com/yieldcheck/internal/jsast"
	"fillmore-labs.com/yieldcheck/internal/report"
	"fillmore-labs.com/yieldcheck/internal/rule"
)

// ErrUnsupportedFile is returned for files that are not JavaScript or TypeScript.
var ErrUnsupportedFile = jsast.ErrUnsupported

// DefaultRules returns the rules run when none are configured.
func DefaultRules() []rule.Rule {
	return []rule.Rule{generator.Rule{}}
}

// Linter runs rules over files. It is safe for concurrent use.
type Linter struct {
	parser      *jsast.Parser
	rules       []rule.Rule
	behavior    config.Behavior
	maxFileSize int
	concurrency int
	logger      *slog.Logger
}

// New creates a [Linter] from [config.Options].
func New(o *config.Options, logger *slog.Logger, rules ...rule.Rule) *Linter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	if logger == nil {
		logger = slog.Default()
	}

	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &Linter{
		parser:      jsast.NewParser(),
		rules:       rules,
		behavior:    o.Behavior,
		maxFileSize: o.MaxFileSize,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Supported reports whether the linter handles the given file name.
func (l *Linter) Supported(filename string) bool {
	switch d := jsast.DialectFor(filename); {
	case d == jsast.Unknown:
		return false

	case d.IsTypeScript():
		return l.behavior.Enabled(config.TypeScript)

	default:
		return true
	}
}

// LintSource checks a single in-memory source file.
func (l *Linter) LintSource(ctx context.Context, filename string, src []byte) ([]report.Diagnostic, error) {
	defer trace.StartRegion(ctx, "LintSource").End()

	if !l.Supported(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filename)
	}

	if l.maxFileSize > 0 && len(src) > l.maxFileSize {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Skipping oversized file",
			slog.String("file", filename), slog.Int("size", len(src)), slog.Int("max", l.maxFileSize))

		return nil, nil
	}

	f, err := l.parser.Parse(ctx, filename, src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !l.behavior.Enabled(config.IncludeGenerated) && f.Generated() {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("file", filename))

		return nil, nil
	}

	var c report.Collector
	if err := rule.Run(f, &c, l.rules...); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	diagnostics := c.Diagnostics()

	if l.behavior.Enabled(config.HonorNoLint) {
		diagnostics = slices.DeleteFunc(diagnostics, func(d report.Diagnostic) bool {
			return f.NoLint(d.Range.Start.Line)
		})
	}

	return diagnostics, nil
}

// LintFile reads and checks a file from disk.
func (l *Linter) LintFile(ctx context.Context, filename string) ([]report.Diagnostic, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	return l.LintSource(ctx, filename, src)
}

// LintFiles checks files concurrently, each with its own rule instances.
// Diagnostics are returned in [report.Sort] order; errors of individual files are joined.
func (l *Linter) LintFiles(ctx context.Context, filenames []string) ([]report.Diagnostic, error) {
	ctx, task := trace.NewTask(ctx, "LintFiles")
	defer task.End()

	results := make([][]report.Diagnostic, len(filenames))
	errs := make([]error, len(filenames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, filename := range filenames {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = l.LintFile(gctx, filename)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var diagnostics []report.Diagnostic
	for _, r := range results {
		diagnostics = append(diagnostics, r...)
	}

	report.Sort(diagnostics)

	return diagnostics, errors.Join(errs...)
}
