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

package run

import (
	"context"
	"go/token"
	"os"
	"path/filepath"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/yieldcheck/internal/astutil"
	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/lint"
)

// Run executes the yieldcheck analyzer on the sources embedded by a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	ctx, task := trace.NewTask(context.Background(), "YieldCheck")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	l := lint.New(&r.Options, nil)

	// Files embedded by multiple directives are checked once
	seen := make(map[string]struct{})

	// Loop over all files
	for _, file := range p.Files {
		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLint() {
			continue
		}

		patterns, err := astutil.EmbedPatterns(file)
		if err != nil {
			p.Reportf(file.Package, "Can't parse embed directive: %v", err)

			continue
		}

		dir := currentFile.Dir()
		fsys := os.DirFS(dir)

		for _, pattern := range patterns {
			names, err := astutil.ExpandEmbed(fsys, pattern)
			if err != nil {
				p.Reportf(pattern.Pos, "Can't resolve embedded files: %v", err)

				continue
			}

			for _, name := range names {
				filename := filepath.Join(dir, filepath.FromSlash(name))
				if _, ok := seen[filename]; ok || !l.Supported(filename) {
					continue
				}

				seen[filename] = struct{}{}

				checkEmbedded(ctx, p, l, pattern.Pos, filename)
			}
		}
	}

	return nil, nil
}

// checkEmbedded lints an embedded file and reports its diagnostics through the pass.
// The file is added to the pass's file set so positions resolve to the embedded source.
func checkEmbedded(ctx context.Context, p *analysis.Pass, l *lint.Linter, directive token.Pos, filename string) {
	defer trace.StartRegion(ctx, "CheckEmbedded").End()

	src, err := os.ReadFile(filename)
	if err != nil {
		p.Reportf(directive, "Can't read embedded file: %v", err)

		return
	}

	diagnostics, err := l.LintSource(ctx, filename, src)
	if err != nil {
		p.Reportf(directive, "Can't check embedded file %s: %v", filepath.Base(filename), err)

		return
	}

	if len(diagnostics) == 0 {
		return
	}

	tf := p.Fset.AddFile(filename, -1, len(src))
	tf.SetLinesForContent(src)

	for _, d := range diagnostics {
		p.Report(analysis.Diagnostic{
			Pos:      tf.Pos(d.Range.Start.Offset),
			End:      tf.Pos(d.Range.End.Offset),
			Category: d.Rule,
			Message:  d.Message,
		})
	}
}
