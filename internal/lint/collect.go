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

package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// skipDir reports whether a directory is never descended into.
func skipDir(name string) bool {
	return name == "node_modules" || (len(name) > 1 && strings.HasPrefix(name, "."))
}

// Collect expands paths into the supported files below them.
// Files named explicitly are kept even when their directory would be skipped.
func (l *Linter) Collect(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("collecting sources: %w", err)
		}

		if !info.IsDir() {
			if l.Supported(path) {
				files = append(files, path)
			}

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			switch {
			case err != nil:
				return err

			case d.IsDir():
				if p != path && skipDir(d.Name()) {
					return filepath.SkipDir
				}

			case d.Type().IsRegular() && l.Supported(p):
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting sources: %w", err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}
