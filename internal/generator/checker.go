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

// Package generator implements the check for generator functions that never yield.
package generator

import "fillmore-labs.com/yieldcheck/internal/report"

// Message is the diagnostic text for a generator without yield.
const Message = `Add a "yield" statement to this generator.`

// Node is a syntax tree node as seen by the [Checker].
type Node interface {
	Kind() string
}

// Function is a generator function node.
type Function interface {
	Node

	// BodyLen returns the number of statements in the function body.
	BodyLen() int
}

// TokenResolver computes the location of the token introducing a function.
type TokenResolver interface {
	FunctionToken(fn Function, parent Node) report.Range
}

// TokenResolverFunc adapts a function to the [TokenResolver] interface.
type TokenResolverFunc func(fn Function, parent Node) report.Range

// FunctionToken implements [TokenResolver].
func (f TokenResolverFunc) FunctionToken(fn Function, parent Node) report.Range { return f(fn, parent) }

// Checker tracks yield expressions per open generator function.
//
// Every generator function gets its own frame, so a yield only counts
// towards its innermost enclosing generator. A Checker serves a single
// traversal; create a new one for each file.
type Checker struct {
	frames  []int
	resolve TokenResolver
	report  func(message string, rng report.Range)
}

// NewChecker creates a [Checker] reporting through the given function.
func NewChecker(resolve TokenResolver, reportf func(message string, rng report.Range)) *Checker {
	return &Checker{resolve: resolve, report: reportf}
}

// Enter opens a frame for a generator function.
func (c *Checker) Enter() {
	c.frames = append(c.frames, 0)
}

// Yield counts a yield expression for the innermost open generator.
// A yield outside any generator is a syntax error and ignored.
func (c *Checker) Yield() {
	if len(c.frames) == 0 {
		return
	}

	c.frames[len(c.frames)-1]++
}

// Exit closes the frame of the generator function fn and reports it
// when its non-empty body contains no yield.
func (c *Checker) Exit(fn Function, parent Node) {
	if len(c.frames) == 0 {
		panic("generator: exit without matching enter for " + fn.Kind())
	}

	last := len(c.frames) - 1
	count := c.frames[last]
	c.frames = c.frames[:last]

	if count == 0 && fn.BodyLen() > 0 {
		c.report(Message, c.resolve.FunctionToken(fn, parent))
	}
}

// Depth returns the number of open generator frames.
func (c *Checker) Depth() int {
	return len(c.frames)
}
