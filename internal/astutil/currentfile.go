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
	"go/ast"
	"go/token"
	"path/filepath"

	"fillmore-labs.com/yieldcheck/internal/jsast"
)

// CurrentFile holds information about the Go file whose embedded sources are checked.
type CurrentFile struct {
	file   *ast.File
	handle *token.File
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{file, handle}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// File returns the syntax tree of the Go file.
func (c CurrentFile) File() *ast.File {
	return c.file
}

// Dir returns the directory containing the Go file.
func (c CurrentFile) Dir() string {
	return filepath.Dir(c.handle.Name())
}

// Generated returns true if the Go file is a generated file.
func (c CurrentFile) Generated() bool {
	return ast.IsGenerated(c.file)
}

// NoLint checks whether the package documentation ends with a //nolint:yieldcheck comment.
func (c CurrentFile) NoLint() bool {
	doc := c.file.Doc
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return CommentHasNoLint(doc.List[len(doc.List)-1])
}

// CommentHasNoLint checks if the provided comment contains a `//nolint:yieldcheck` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	return jsast.CommentHasNoLint(comment.Text)
}
