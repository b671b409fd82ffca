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

package rule_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/yieldcheck/internal/jsast"
	"fillmore-labs.com/yieldcheck/internal/report"
	. "fillmore-labs.com/yieldcheck/internal/rule"
	"fillmore-labs.com/yieldcheck/internal/testsource"
)

// recorder is a rule logging the selector events it receives.
type recorder struct {
	events *[]string
}

func (recorder) Name() string { return "recorder" }

func (r recorder) Create(ctx *Context) Listeners {
	record := func(prefix string) Handler {
		return func(n jsast.Node) {
			*r.events = append(*r.events, prefix+" "+n.Kind()+" < "+ctx.Parent().Kind())
		}
	}

	return Listeners{
		GeneratorFunction:     record("enter"),
		GeneratorFunctionExit: record("exit"),
		YieldExpression:       record("yield"),
	}
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `function* f() { function g() {} yield 1; }`)

	var events []string
	if err := Run(f, &report.Collector{}, recorder{&events}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{
		"enter generator_function_declaration < program",
		"yield yield_expression < expression_statement",
		"exit generator_function_declaration < program",
	}

	if len(events) != len(want) {
		t.Fatalf("Got events %q, want %q", events, want)
	}

	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d = %q, want %q", i, events[i], want[i])
		}
	}
}

// reporter is a rule reporting every function and program end.
type reporter struct{}

func (reporter) Name() string { return "reporter" }

func (reporter) Create(ctx *Context) Listeners {
	return Listeners{
		Function: func(n jsast.Node) { ctx.Report("function", n.Range()) },
		ProgramExit: func(n jsast.Node) {
			ctx.InternalError(n.Range(), "end of %s", ctx.File().Name)
		},
	}
}

func TestRunReport(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "const a = () => 1;\nfunction b() {}")

	var c report.Collector
	if err := Run(f, &c, reporter{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := c.Diagnostics()

	want := []string{"Internal Error: end of test.js", "function", "function"}
	if len(got) != len(want) {
		t.Fatalf("Got %d diagnostics %v, want %d", len(got), got, len(want))
	}

	for i, d := range got {
		if d.Message != want[i] {
			t.Errorf("Diagnostic %d message = %q, want %q", i, d.Message, want[i])
		}

		if d.Rule != "reporter" || d.File != "test.js" {
			t.Errorf("Diagnostic %d = %v, want rule reporter in test.js", i, d)
		}
	}
}

type unknown struct{}

func (unknown) Name() string { return "unknown" }

func (unknown) Create(*Context) Listeners {
	return Listeners{"CallExpression": func(jsast.Node) {}}
}

func TestRunUnknownSelector(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `f();`)

	if err := Run(f, &report.Collector{}, unknown{}); !errors.Is(err, ErrUnknownSelector) {
		t.Errorf("Run error = %v, want %v", err, ErrUnknownSelector)
	}
}
