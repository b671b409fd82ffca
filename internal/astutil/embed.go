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

package astutil

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"unicode"
)

// EmbedPattern is a single pattern of a //go:embed directive.
type EmbedPattern struct {
	// Pattern is the unquoted glob, without an "all:" prefix.
	Pattern string

	// All includes files starting with '.' or '_' in embedded directories.
	All bool

	// Pos is the position of the directive.
	Pos token.Pos
}

var errBadQuote = errors.New("invalid quoted string in //go:embed")

// EmbedPatterns returns the patterns of all //go:embed directives in file.
func EmbedPatterns(file *ast.File) ([]EmbedPattern, error) {
	var patterns []EmbedPattern

	for _, group := range file.Comments {
		for _, c := range group.List {
			args, ok := strings.CutPrefix(c.Text, "//go:embed")
			if !ok || (args != "" && !unicode.IsSpace(rune(args[0]))) {
				continue
			}

			fields, err := splitQuoted(args)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", err, c.Text)
			}

			for _, f := range fields {
				p := EmbedPattern{Pos: c.Pos()}
				p.Pattern, p.All = strings.CutPrefix(f, "all:")
				patterns = append(patterns, p)
			}
		}
	}

	return patterns, nil
}

// splitQuoted splits directive arguments on spaces, honoring Go string quotes.
func splitQuoted(s string) ([]string, error) {
	var fields []string

	for s = strings.TrimLeftFunc(s, unicode.IsSpace); s != ""; s = strings.TrimLeftFunc(s, unicode.IsSpace) {
		switch s[0] {
		case '"', '`':
			prefix, err := strconv.QuotedPrefix(s)
			if err != nil {
				return nil, errBadQuote
			}

			field, err := strconv.Unquote(prefix)
			if err != nil {
				return nil, errBadQuote
			}

			fields = append(fields, field)
			s = s[len(prefix):]

		default:
			end := strings.IndexFunc(s, unicode.IsSpace)
			if end < 0 {
				end = len(s)
			}

			fields = append(fields, s[:end])
			s = s[end:]
		}
	}

	return fields, nil
}

// ExpandEmbed resolves a pattern in the package directory fsys the way the
// go command does: glob matches may be files or directories, and directories
// are embedded recursively. Returned names are slash-separated and relative to fsys.
func ExpandEmbed(fsys fs.FS, p EmbedPattern) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Clean(p.Pattern))
	if err != nil {
		return nil, fmt.Errorf("//go:embed %s: %w", p.Pattern, err)
	}

	var files []string

	for _, m := range matches {
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, m)

			continue
		}

		err = fs.WalkDir(fsys, m, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if name != m && !p.All && hidden(d.Name()) {
				if d.IsDir() {
					return fs.SkipDir
				}

				return nil
			}

			if d.Type().IsRegular() {
				files = append(files, name)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("//go:embed %s: %w", p.Pattern, err)
		}
	}

	return files, nil
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}
