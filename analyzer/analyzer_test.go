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

package analyzer_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/yieldcheck/analyzer"
)

// runAnalyzer applies a to the Go files in testdata/src/<pkg> and returns
// the formatted diagnostics, sorted. Diagnostics point into embedded files,
// which analysistest expectations can't annotate.
func runAnalyzer(t *testing.T, a *analysis.Analyzer, pkg string) []string {
	t.Helper()

	dir := filepath.Join("testdata", "src", pkg)

	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		t.Fatalf("Can't list Go files: %v", err)
	}

	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(matches))

	for _, m := range matches {
		f, err := parser.ParseFile(fset, m, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("Can't parse %s: %v", m, err)
		}

		files = append(files, f)
	}

	var got []string

	pass := &analysis.Pass{
		Analyzer: a,
		Fset:     fset,
		Files:    files,
		Pkg:      types.NewPackage(pkg, pkg),
		Report: func(d analysis.Diagnostic) {
			pos := fset.Position(d.Pos)

			rel, err := filepath.Rel(dir, pos.Filename)
			if err != nil {
				rel = pos.Filename
			}

			got = append(got, fmt.Sprintf("%s:%d:%d: %s (%s)", filepath.ToSlash(rel), pos.Line, pos.Column, d.Message, d.Category))
		},
	}

	if _, err := a.Run(pass); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	slices.Sort(got)

	return got
}

const msg = `Add a "yield" statement to this generator. (generator-without-yield)`

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pkg     string
		options Option
		want    []string
	}{
		{
			name: "Default",
			pkg:  "a",
			want: []string{
				"scripts/lib.ts:2:4: " + msg,
				"scripts/worker.js:1:17: " + msg,
				"static/app.js:11:4: " + msg,
				"static/app.js:6:11: " + msg,
			},
		},
		{
			name:    "JavaScriptOnly",
			pkg:     "a",
			options: WithTypeScript(false),
			want: []string{
				"scripts/worker.js:1:17: " + msg,
				"static/app.js:11:4: " + msg,
				"static/app.js:6:11: " + msg,
			},
		},
		{
			name:    "IgnoreNoLint",
			pkg:     "a",
			options: Options{WithNoLint(false), WithTypeScript(false)},
			want: []string{
				"scripts/worker.js:1:17: " + msg,
				"static/app.js:11:4: " + msg,
				"static/app.js:6:11: " + msg,
				"static/quiet.js:1:11: " + msg,
			},
		},
		{
			name:    "MaxFileSize",
			pkg:     "a",
			options: WithMaxFileSize(64),
			want: []string{
				"scripts/worker.js:1:17: " + msg,
			},
		},
		{
			name: "PackageNoLint",
			pkg:  "quiet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runAnalyzer(t, New(tt.options), tt.pkg)

			if !slices.Equal(got, tt.want) {
				t.Errorf("Got diagnostics\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()
	if err := a.Flags.Parse([]string{"-typescript=false", "-max-file-size=0"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	got := runAnalyzer(t, a, "a")

	if len(got) != 3 {
		t.Errorf("Got %d diagnostics %q, want 3", len(got), got)
	}
}
