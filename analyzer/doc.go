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

// Package analyzer implements the yieldcheck static analysis pass.
//
// # Overview
//
// Yieldcheck reports generator functions that never yield. It checks the
// JavaScript and TypeScript sources a Go package embeds with //go:embed,
// so web assets shipped inside a binary are linted together with the Go code.
//
// # Example
//
// Given a package
//
//	//go:embed static
//	var static embed.FS
//
// and a file static/app.js containing
//
//	function* ids() {
//	    return 1;
//	}
//
// the analyzer reports
//
//	static/app.js:1:11: Add a "yield" statement to this generator.
//
// # Suppression
//
// A `//nolint:yieldcheck` comment on the reported line of the embedded file
// suppresses the diagnostic. The same comment at the end of the package
// documentation of a Go file skips all files it embeds.
package analyzer
