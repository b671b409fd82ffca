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

// Package rule hosts lint rules: it registers their selector listeners,
// drives a single traversal per file and collects their diagnostics.
package rule

import (
	"fmt"

	"fillmore-labs.com/yieldcheck/internal/jsast"
	"fillmore-labs.com/yieldcheck/internal/report"
)

// Handler is called for every node matching a selector.
type Handler func(n jsast.Node)

// Listeners maps selectors to handlers.
type Listeners map[string]Handler

// Rule is a lint rule. Create is called once per file and traversal,
// so any state a rule keeps belongs to the returned listeners.
type Rule interface {
	Name() string
	Create(ctx *Context) Listeners
}

// Context is the view of the current traversal given to a rule.
type Context struct {
	rule     string
	file     *jsast.File
	parent   jsast.Node
	reporter report.Reporter
}

// File returns the file being analyzed.
func (c *Context) File() *jsast.File {
	return c.file
}

// Parent returns the syntactic parent of the node passed to the running handler.
func (c *Context) Parent() jsast.Node {
	return c.parent
}

// Report emits a diagnostic for the running rule.
func (c *Context) Report(message string, rng report.Range) {
	c.reporter.Report(report.Diagnostic{
		File:    c.file.Name,
		Rule:    c.rule,
		Message: message,
		Range:   rng,
	})
}

// InternalError reports a diagnostic indicating a defect in the rule host
// rather than an issue in the analyzed code.
func (c *Context) InternalError(rng report.Range, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	c.Report(string(msg), rng)
}
