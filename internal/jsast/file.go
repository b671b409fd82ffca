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

package jsast

import (
	"regexp"
	"slices"
	"strings"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"fillmore-labs.com/yieldcheck/internal/report"
)

// linterName is the name matched in nolint directives.
const linterName = "yieldcheck"

// File is a parsed source file.
type File struct {
	Name    string
	Dialect Dialect
	Source  []byte

	tree  *sitter.Tree
	lines []int // offsets of line starts

	comments map[int][]string // comment texts by starting line, built lazily
}

func newFile(name string, d Dialect, src []byte, tree *sitter.Tree) *File {
	lines := []int{0}

	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &File{Name: name, Dialect: d, Source: src, tree: tree, lines: lines}
}

// Close releases the syntax tree. Nodes of the file must not be used afterwards.
func (f *File) Close() {
	if f.tree == nil {
		return
	}

	f.tree.Close()
	f.tree = nil
}

// Root returns the program node.
func (f *File) Root() Node {
	return Node{ts: f.tree.RootNode(), file: f}
}

// Position converts a byte offset into a [report.Position].
func (f *File) Position(offset int) report.Position {
	offset = min(max(offset, 0), len(f.Source))

	i, found := slices.BinarySearch(f.lines, offset)
	if !found {
		i--
	}

	return report.Position{Offset: offset, Line: i + 1, Column: offset - f.lines[i] + 1}
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lines)
}

var generatedPattern = regexp.MustCompile(`^// Code generated .* DO NOT EDIT\.$`)

// Generated reports whether the file carries a generated-code marker
// in the comments preceding the first statement.
func (f *File) Generated() bool {
	for c := range f.Root().NamedChildren() {
		switch c.Kind() {
		case "hash_bang_line":
			continue

		case "comment":
			text := c.Text()
			if generatedPattern.MatchString(text) || strings.Contains(text, "@generated") {
				return true
			}

		default:
			return false
		}
	}

	return false
}

var nolintPattern = regexp.MustCompile(`^(?://|/\*)\s*nolint:([a-zA-Z0-9,_-]+)`)

// NoLint checks whether a comment starting on the given line suppresses yieldcheck.
func (f *File) NoLint(line int) bool {
	if f.comments == nil {
		f.collectComments()
	}

	return slices.ContainsFunc(f.comments[line], CommentHasNoLint)
}

func (f *File) collectComments() {
	f.comments = make(map[int][]string)

	Walk(f.Root(), VisitorFuncs{
		EnterFunc: func(n, _ Node) {
			if n.Kind() != "comment" {
				return
			}

			line := n.Range().Start.Line
			f.comments[line] = append(f.comments[line], n.Text())
		},
	})
}

// CommentHasNoLint checks if the comment text contains a `nolint:yieldcheck` or `nolint:all` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == linterName || l == "all" {
			return true
		}
	}

	return false
}
