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

// Package testsource provides utilities for parsing JavaScript sources in tests.
//
// It simplifies testing of yieldcheck components by handling the boilerplate
// of parsing fragments and loading txtar fixtures.
package testsource

import (
	"context"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/yieldcheck/internal/jsast"
)

// Parse parses a JavaScript source fragment into a [jsast.File].
// The file is closed when the test finishes.
func Parse(tb testing.TB, src string) *jsast.File {
	tb.Helper()

	return ParseFile(tb, "test.js", src)
}

// ParseFile parses a source with the dialect derived from filename.
func ParseFile(tb testing.TB, filename, src string) *jsast.File {
	tb.Helper()

	f, err := jsast.NewParser().Parse(context.Background(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(f.Close)

	return f
}

// Find returns the first node in pre-order satisfying pred, along with its parent.
func Find(tb testing.TB, f *jsast.File, pred func(jsast.Node) bool) (node, parent jsast.Node) {
	tb.Helper()

	found := false

	jsast.Walk(f.Root(), jsast.VisitorFuncs{
		EnterFunc: func(n, p jsast.Node) {
			if found || !pred(n) {
				return
			}

			node, parent, found = n, p, true
		},
	})

	if !found {
		tb.Fatal("Can't find node")
	}

	return node, parent
}

// Archive reads a txtar fixture.
func Archive(tb testing.TB, filename string) *txtar.Archive {
	tb.Helper()

	a, err := txtar.ParseFile(filename)
	if err != nil {
		tb.Fatalf("Can't read fixture %s: %v", filename, err)
	}

	return a
}
