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

package lint_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/yieldcheck/internal/config"
	"fillmore-labs.com/yieldcheck/internal/jsast"
	. "fillmore-labs.com/yieldcheck/internal/lint"
	"fillmore-labs.com/yieldcheck/internal/report"
	"fillmore-labs.com/yieldcheck/internal/testsource"
)

// extract writes the source files of an archive below dir and returns the expectations.
func extract(t *testing.T, a *txtar.Archive, dir string) map[string]string {
	t.Helper()

	want := make(map[string]string)

	for _, f := range a.Files {
		if strings.HasPrefix(f.Name, "want") {
			want[f.Name] = strings.TrimSpace(string(f.Data))

			continue
		}

		name := filepath.Join(dir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(name, f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	return want
}

func format(t *testing.T, dir string, diagnostics []report.Diagnostic) string {
	t.Helper()

	lines := make([]string, 0, len(diagnostics))

	for _, d := range diagnostics {
		rel, err := filepath.Rel(dir, d.File)
		if err != nil {
			t.Fatal(err)
		}

		lines = append(lines, fmt.Sprintf("%s:%s", filepath.ToSlash(rel), d.Range.Start))
	}

	return strings.Join(lines, "\n")
}

func TestLintFiles(t *testing.T) {
	t.Parallel()

	a := testsource.Archive(t, filepath.Join("testdata", "project.txtar"))

	tests := []struct {
		name   string
		modify func(o *config.Options)
		want   string
	}{
		{"Default", func(*config.Options) {}, "want"},
		{"Generated", func(o *config.Options) { o.Behavior.Set(config.IncludeGenerated, true) }, "want-generated"},
		{"JavaScriptOnly", func(o *config.Options) { o.Behavior.Set(config.TypeScript, false) }, "want-javascript"},
		{"IgnoreNoLint", func(o *config.Options) { o.Behavior.Set(config.HonorNoLint, false) }, "want-all"},
		{"Sequential", func(o *config.Options) { o.Concurrency = 1 }, "want"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			want := extract(t, a, dir)

			o := config.DefaultOptions()
			tt.modify(o)

			l := New(o, nil)

			files, err := l.Collect([]string{filepath.Join(dir, "src")})
			if err != nil {
				t.Fatalf("Collect failed: %v", err)
			}

			diagnostics, err := l.LintFiles(context.Background(), files)
			if err != nil {
				t.Fatalf("LintFiles failed: %v", err)
			}

			if got := format(t, dir, diagnostics); got != want[tt.want] {
				t.Errorf("Got diagnostics:\n%s\nwant:\n%s", got, want[tt.want])
			}
		})
	}
}

func TestLintSource(t *testing.T) {
	t.Parallel()

	l := New(config.DefaultOptions(), nil)

	diagnostics, err := l.LintSource(context.Background(), "a.js", []byte("function* f() { g(); }"))
	if err != nil {
		t.Fatalf("LintSource failed: %v", err)
	}

	if len(diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(diagnostics))
	}

	if got, want := diagnostics[0].String(), `a.js:1:11: Add a "yield" statement to this generator. (generator-without-yield)`; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestLintSourceUnsupported(t *testing.T) {
	t.Parallel()

	l := New(config.DefaultOptions(), nil)

	if _, err := l.LintSource(context.Background(), "a.py", nil); !errors.Is(err, ErrUnsupportedFile) {
		t.Errorf("Got error %v, want %v", err, ErrUnsupportedFile)
	}
}

func TestLintSourceOversized(t *testing.T) {
	t.Parallel()

	o := config.DefaultOptions()
	o.MaxFileSize = 10

	diagnostics, err := New(o, nil).LintSource(context.Background(), "a.js", []byte("function* f() { g(); }"))
	if err != nil || len(diagnostics) != 0 {
		t.Errorf("Got %v, %v; want no diagnostics for oversized file", diagnostics, err)
	}
}

func TestLintSourceSyntaxError(t *testing.T) {
	t.Parallel()

	l := New(config.DefaultOptions(), nil)

	diagnostics, err := l.LintSource(context.Background(), "a.js", []byte("function* f() { x(); @ yield 1; }"))
	if !errors.Is(err, jsast.ErrSyntax) {
		t.Fatalf("Got error %v, want %v", err, jsast.ErrSyntax)
	}

	if !strings.HasPrefix(err.Error(), "a.js:1:") {
		t.Errorf("Got error %q, want position in a.js", err)
	}

	if len(diagnostics) != 0 {
		t.Errorf("Got diagnostics %v for a file with syntax errors, want none", diagnostics)
	}
}

func TestLintFilesSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.js")
	if err := os.WriteFile(broken, []byte("function* f() { x(); @ yield 1; }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	valid := filepath.Join(dir, "valid.js")
	if err := os.WriteFile(valid, []byte("function* g() { x(); }\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	diagnostics, err := New(config.DefaultOptions(), nil).LintFiles(context.Background(), []string{broken, valid})
	if !errors.Is(err, jsast.ErrSyntax) {
		t.Errorf("Got error %v, want %v", err, jsast.ErrSyntax)
	}

	if len(diagnostics) != 1 || diagnostics[0].File != valid {
		t.Errorf("Got diagnostics %v, want one in %s", diagnostics, valid)
	}
}

func TestLintFilesCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(config.DefaultOptions(), nil).LintFiles(ctx, []string{"a.js"}); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, want %v", err, context.Canceled)
	}
}

func TestLintFilesMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.js")

	if _, err := New(config.DefaultOptions(), nil).LintFiles(context.Background(), []string{missing}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, want %v", err, os.ErrNotExist)
	}
}
