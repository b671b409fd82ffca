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
	"path/filepath"
	"strings"
)

//go:generate go tool stringer -type Dialect -linecomment

// Dialect is the grammar a source file is parsed with.
type Dialect uint8

const (
	// Unknown marks files that are not JavaScript or TypeScript.
	Unknown Dialect = iota // unknown

	// JavaScript covers ECMAScript modules, CommonJS and JSX.
	JavaScript // javascript

	// TypeScript covers plain TypeScript sources.
	TypeScript // typescript

	// TSX covers TypeScript with JSX.
	TSX // tsx
)

var extensions = map[string]Dialect{
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// DialectFor determines the [Dialect] from a file name's extension.
func DialectFor(filename string) Dialect {
	ext := strings.ToLower(filepath.Ext(filename))

	// declaration files hold no function bodies
	if strings.HasSuffix(strings.ToLower(filename), ".d.ts") {
		return Unknown
	}

	return extensions[ext]
}

// IsTypeScript reports whether the dialect is one of the TypeScript grammars.
func (d Dialect) IsTypeScript() bool {
	return d == TypeScript || d == TSX
}
