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

import "fillmore-labs.com/yieldcheck/internal/report"

// MainFunctionToken returns the range of the token that introduces a function,
// keeping diagnostics short instead of spanning the whole function:
//
//   - named declarations: the name
//   - methods and functions assigned to object keys: the key, without computed brackets
//   - arrow functions: the `=>` token
//   - everything else: the `function` keyword
//
// The whole function range is returned when no such token exists.
func MainFunctionToken(fn, parent Node) report.Range {
	var token Node

	switch fn.FunctionKind() {
	case Declaration:
		if token = fn.Field("name"); token.IsNull() {
			token = fn.token("function")
		}

	case Method:
		token = fn.Field("name")

	case Expression:
		if parent.Kind() == "pair" {
			token = parent.Field("key")
			if token.Kind() == "computed_property_name" {
				token = token.firstNamedChild()
			}
		} else {
			token = fn.token("function")
		}

	case Arrow:
		token = fn.token("=>")

	case NotFunction:
	}

	if token.IsNull() {
		return fn.Range()
	}

	return token.Range()
}
