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

package generator

import (
	"fillmore-labs.com/yieldcheck/internal/jsast"
	"fillmore-labs.com/yieldcheck/internal/report"
	"fillmore-labs.com/yieldcheck/internal/rule"
)

// Name is the rule name used in diagnostics.
const Name = "generator-without-yield"

// Rule flags generator functions with a non-empty body but no yield expression.
type Rule struct{}

var _ rule.Rule = Rule{}

// Name implements [rule.Rule].
func (Rule) Name() string { return Name }

// Create implements [rule.Rule].
func (Rule) Create(ctx *rule.Context) rule.Listeners {
	c := NewChecker(resolver{}, ctx.Report)

	return rule.Listeners{
		rule.GeneratorFunction: func(jsast.Node) { c.Enter() },
		rule.YieldExpression: func(n jsast.Node) {
			// outside generators, yield is an identifier
			if n.EnclosingFunction().IsGeneratorFunction() {
				c.Yield()
			}
		},
		rule.GeneratorFunctionExit: func(n jsast.Node) {
			c.Exit(n, ctx.Parent())
		},
		rule.ProgramExit: func(n jsast.Node) {
			if depth := c.Depth(); depth != 0 {
				ctx.InternalError(n.Range(), "%d generator frames still open after traversal", depth)
			}
		},
	}
}

// resolver locates functions with [jsast.MainFunctionToken].
type resolver struct{}

func (resolver) FunctionToken(fn Function, parent Node) report.Range {
	f, ok := fn.(jsast.Node)
	if !ok {
		return report.Range{}
	}

	p, _ := parent.(jsast.Node)

	return jsast.MainFunctionToken(f, p)
}
