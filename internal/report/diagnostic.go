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

package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Position is a location in a source file.
// Line and Column are 1-based, Column counts bytes.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String returns the position in line:column form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open span of source text.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Diagnostic is a single rule violation.
type Diagnostic struct {
	File    string `json:"file"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Range   Range  `json:"range"`
}

// String formats the diagnostic in the conventional file:line:column form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%s: %s (%s)", d.File, d.Range.Start, d.Message, d.Rule)
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the [Reporter] interface.
type ReporterFunc func(d Diagnostic)

// Report implements [Reporter].
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Collector is a [Reporter] gathering all diagnostics in memory.
type Collector struct {
	diagnostics []Diagnostic
}

// Report implements [Reporter].
func (c *Collector) Report(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns the collected diagnostics in [Sort] order.
func (c *Collector) Diagnostics() []Diagnostic {
	Sort(c.diagnostics)

	return c.diagnostics
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.diagnostics)
}

// Sort orders diagnostics by file, position, rule and message.
func Sort(diagnostics []Diagnostic) {
	slices.SortStableFunc(diagnostics, Compare)
}

// Compare defines the total order used by [Sort].
func Compare(a, b Diagnostic) int {
	return cmp.Or(
		cmp.Compare(a.File, b.File),
		cmp.Compare(a.Range.Start.Offset, b.Range.Start.Offset),
		cmp.Compare(a.Range.End.Offset, b.Range.End.Offset),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.Message, b.Message),
	)
}
